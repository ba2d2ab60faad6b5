package booking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bookingform/handler"
	"github.com/dmitrymomot/bookingform/pkg/binder"
	core "github.com/dmitrymomot/bookingform/pkg/booking"
	"github.com/dmitrymomot/bookingform/pkg/clientip"
	"github.com/dmitrymomot/bookingform/pkg/cookie"
	"github.com/dmitrymomot/bookingform/pkg/logger"
	"github.com/dmitrymomot/bookingform/pkg/ratelimiter"
)

var (
	errUnknownField = handler.NewHTTPError(http.StatusNotFound, "Unknown form field.")
	errInProgress   = handler.NewHTTPError(http.StatusConflict, "Your booking is already being sent.")
	errRateLimited  = handler.NewHTTPError(http.StatusTooManyRequests, "Too many submissions. Please try again later.")
)

// Service serves the booking form of each visitor.
type Service struct {
	forms        *core.Registry
	cookies      *cookie.Manager
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      ratelimiter.RateLimiter
	log          *slog.Logger
	basePath     string
}

type ServiceOption func(*Service)

// WithLimiter rate limits submissions per client IP.
func WithLimiter(l ratelimiter.RateLimiter) ServiceOption {
	return func(s *Service) { s.limiter = l }
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBasePath sets the prefix the service is mounted under, used to build
// the URLs in rendered forms.
func WithBasePath(p string) ServiceOption {
	return func(s *Service) { s.basePath = p }
}

func NewService(
	forms *core.Registry,
	cookies *cookie.Manager,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...ServiceOption,
) *Service {
	s := &Service{
		forms:        forms,
		cookies:      cookies,
		views:        views,
		errorHandler: errorHandler,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("booking"))
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(VisitorMiddleware(s.cookies))

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))

	r.Post("/fields/{field}", handler.Wrap(s.field,
		handler.WithBinders[handler.Context, FieldRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, FieldRequest](s.errorHandler),
	))

	submit := handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
	)
	if s.limiter != nil {
		r.With(s.rateLimit()).Post("/submit", submit)
	} else {
		r.Post("/submit", submit)
	}

	return r
}

func (s *Service) rateLimit() func(http.Handler) http.Handler {
	return ratelimiter.Middleware(s.limiter,
		ratelimiter.Composite(ratelimiter.Prefix("submit"), clientip.FromRequest),
		ratelimiter.WithLimitHandler(func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
			s.log.WarnContext(r.Context(), "submission rate limited",
				logger.Event("rate_limited"),
				slog.String("ip", clientip.FromRequest(r)),
			)
			s.errorHandler(handler.NewContext(w, r), errRateLimited)
		}),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			s.errorHandler(handler.NewContext(w, r), err)
		}),
	)
}

func (s *Service) page(ctx handler.Context, _ PageRequest) handler.Response {
	snap := s.forms.Form(VisitorID(ctx)).Snapshot()
	form := s.formParams(snap)

	return handler.TemplPartial(
		s.views.Form(form),
		s.views.Page(PageParams{Form: form}),
		handler.WithTarget("#"+FormID),
	)
}

func (s *Service) field(ctx handler.Context, req FieldRequest) handler.Response {
	f, err := core.ParseField(req.Field)
	if err != nil {
		return handler.Error(errUnknownField)
	}

	value, _ := req.Get(f)
	form := s.forms.Form(VisitorID(ctx))
	msg, err := form.Change(f, value)
	if err != nil {
		return handler.Error(err)
	}

	return handler.TemplPartial(
		s.views.FieldError(FieldErrorParams{Field: f, Message: msg}),
		s.views.Page(PageParams{Form: s.formParams(form.Snapshot())}),
		handler.WithTarget("#"+FieldErrorID(f)),
	)
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	form := s.forms.Form(VisitorID(ctx))

	start := time.Now()
	outcome, err := form.SubmitValues(ctx, req.Posted())
	snap := form.Snapshot()

	switch {
	case errors.Is(err, core.ErrSubmissionInProgress):
		return handler.Error(errInProgress)

	case outcome == core.OutcomeRejected:
		if !errors.Is(err, core.ErrValidationFailed) {
			return handler.Error(err)
		}
		s.log.DebugContext(ctx, "booking rejected",
			logger.Outcome(outcome.String()),
			logger.Fields(fieldNames(snap.Errors.Fields())),
		)
		fp := s.formParams(snap)
		return handler.TemplPartialStatus(http.StatusUnprocessableEntity,
			s.views.Form(fp),
			s.views.Page(PageParams{Form: fp}),
			handler.WithTarget("#"+FormID),
		)

	case outcome == core.OutcomeFailed:
		s.log.ErrorContext(ctx, "booking dispatch failed",
			logger.Outcome(outcome.String()),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return s.result(http.StatusBadGateway, snap, ToastParams{Type: ToastError, Message: core.FailureMessage})

	default:
		s.log.InfoContext(ctx, "booking sent",
			logger.Outcome(outcome.String()),
			logger.Duration(time.Since(start)),
		)
		return s.result(http.StatusOK, snap, ToastParams{Type: ToastSuccess, Message: core.SuccessMessage})
	}
}

// result re-renders the form and shows toast.
func (s *Service) result(status int, snap core.Snapshot, toast ToastParams) handler.Response {
	fp := s.formParams(snap)
	return handler.TemplMulti(status,
		s.views.Page(PageParams{Form: fp, Toast: &toast}),
		handler.Patch(s.views.Form(fp), handler.WithTarget("#"+FormID)),
		handler.Patch(s.views.Toast(toast),
			handler.WithTarget("#"+ToastContainerID),
			handler.WithPatchMode(handler.PatchPrepend),
		),
	)
}

func (s *Service) formParams(snap core.Snapshot) FormParams {
	specs := core.Specs(snap.Today)
	fields := make([]FieldParams, 0, len(specs))
	for _, spec := range specs {
		fields = append(fields, FieldParams{
			FieldSpec: spec,
			Value:     snap.Values.Get(spec.Field),
			Error:     snap.Errors.Get(spec.Field),
			ChangeURL: s.basePath + "/fields/" + spec.Field.String(),
		})
	}
	return FormParams{
		SubmitURL:  s.basePath + "/submit",
		Submitting: snap.Submitting(),
		Fields:     fields,
	}
}

func fieldNames(fields []core.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}
