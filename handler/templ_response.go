package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches github.com/a-h/templ.Component without importing it.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector of the element to patch.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

// Patch creates a TemplPatch for TemplMulti.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// writeHTML renders a component as a plain HTML response.
// A zero status leaves the default 200.
func writeHTML(w http.ResponseWriter, r *http.Request, status int, c TemplComponent) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != 0 {
		w.WriteHeader(status)
	}
	return c.Render(r.Context(), w)
}

type templResponse struct {
	component TemplComponent
	options   []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	return writeHTML(w, r, 0, t.component)
}

// Templ renders a component via SSE for Datastar requests and as HTML otherwise.
//
//	return handler.Templ(views.FieldError(field, msg), handler.WithTarget("#error-phone"))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

type templPartialResponse struct {
	partial TemplComponent
	full    TemplComponent
	status  int
	options []datastar.PatchElementOption
}

func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}
	return writeHTML(w, r, t.status, t.full)
}

// TemplPartial patches partial for Datastar requests and renders full otherwise.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templPartialResponse{partial: partial, full: full, options: opts}
}

// TemplPartialStatus is TemplPartial with a status code for the full render.
// SSE responses always use 200 since the stream has to open.
func TemplPartialStatus(status int, partial, full TemplComponent, opts ...TemplOption) Response {
	return templPartialResponse{partial: partial, full: full, status: status, options: opts}
}

type templMultiResponse struct {
	patches []TemplPatch
	full    TemplComponent
	status  int
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}
	return writeHTML(w, r, t.status, t.full)
}

// TemplMulti sends one SSE patch per TemplPatch to Datastar requests and
// renders full, with status, for regular requests.
//
//	return handler.TemplMulti(http.StatusBadGateway, views.Page(p),
//		handler.Patch(views.Form(p), handler.WithTarget("#booking-form")),
//		handler.Patch(views.Toast(t), handler.WithTarget("#toast-container"),
//			handler.WithPatchMode(handler.PatchPrepend)),
//	)
func TemplMulti(status int, full TemplComponent, patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches, full: full, status: status}
}
