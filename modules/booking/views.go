package booking

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/bookingform/handler"
	core "github.com/dmitrymomot/bookingform/pkg/booking"
)

// Views renders the booking pages. Every field must be set.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	FieldError func(FieldErrorParams) templ.Component
	Toast      func(ToastParams) templ.Component

	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// ErrorHandlerConfig returns the error handler settings for these views.
func (v *Views) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:   v.ErrorPage,
		ErrorToast:  v.ErrorToast,
		ToastTarget: "#" + ToastContainerID,
	}
}

// DOM ids shared by the views and the SSE patches.
const (
	FormID           = "booking-form"
	ToastContainerID = "toast-container"
)

// FieldErrorID is the id of the element holding field's message.
func FieldErrorID(f core.Field) string {
	return "error-" + f.String()
}

type PageParams struct {
	Form  FormParams
	Toast *ToastParams
}

type FormParams struct {
	SubmitURL  string
	Submitting bool
	Fields     []FieldParams
}

type FieldParams struct {
	core.FieldSpec
	Value     string
	Error     string
	ChangeURL string
}

// ErrorID is the id of the field's message slot.
func (p FieldParams) ErrorID() string { return FieldErrorID(p.Field) }

type FieldErrorParams struct {
	Field   core.Field
	Message string
}

func (p FieldErrorParams) ID() string { return FieldErrorID(p.Field) }

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

type ToastParams struct {
	Type    ToastType
	Message string
}
