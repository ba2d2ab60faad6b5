package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bookingform/handler"
	"github.com/dmitrymomot/bookingform/modules/booking"
)

// DatastarScript is the Datastar client bundle loaded by the page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

//go:embed templates/*.html
var files embed.FS

var tmpl = template.Must(template.New("views").ParseFS(files, "templates/*.html"))

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

type pageData struct {
	booking.PageParams
	ScriptURL string
}

// New returns the booking views.
func New() *booking.Views {
	return &booking.Views{
		Page: func(p booking.PageParams) templ.Component {
			return component("page", pageData{PageParams: p, ScriptURL: DatastarScript})
		},
		Form: func(p booking.FormParams) templ.Component {
			return component("form", p)
		},
		FieldError: func(p booking.FieldErrorParams) templ.Component {
			return component("field_error", p)
		},
		Toast: func(p booking.ToastParams) templ.Component {
			return component("toast", p)
		},
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return component("error_page", p)
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return component("error_toast", p)
		},
	}
}
