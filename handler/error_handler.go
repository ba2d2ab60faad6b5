package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/bookingform/pkg/binder"
	"github.com/dmitrymomot/bookingform/pkg/environment"
	"github.com/dmitrymomot/bookingform/pkg/logger"
	"github.com/dmitrymomot/bookingform/pkg/requestid"
	"github.com/dmitrymomot/bookingform/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
	Detail     string // raw error, development only
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full error page for regular HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a toast for Datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case statusCode >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// classifyError maps err to a status code and a user-facing message.
// Messages of unclassified errors are never shown to users.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		httpErr = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidPath):
		httpErr = ErrBadRequest
	}
	if httpErr.Code != 0 {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		info.StatusCode = http.StatusUnprocessableEntity
		messages := make([]string, 0, len(verrs))
		for _, e := range verrs {
			messages = append(messages, e.Message)
		}
		info.Message = strings.Join(messages, "; ")
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured for DataStar request",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	response := Templ(
		cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: requestID}),
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)
	if err := response.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, err error, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	params := ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	}
	if environment.IsDevelopment(ctx.Request().Context()) {
		params.Detail = err.Error()
	}
	if err := writeHTML(ctx.ResponseWriter(), ctx.Request(), info.StatusCode, cfg.ErrorPage(params)); err != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler returns an error handler that renders a full error page for
// regular requests and a toast patch for Datastar requests. HTTPError codes
// are kept, binding errors map to 400 or 415, validation errors to 422 and
// anything else to 500.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderToast(ctx, cfg, info, requestID, log)
			return
		}
		renderPage(ctx, cfg, err, info, requestID, log)
	}
}
