// Package binder fills request structs from HTTP requests.
//
// Form binds urlencoded and multipart bodies through `form` tags; Path binds
// router parameters through `path` tags. Both are meant to be passed to
// handler.WithBinders:
//
//	type FieldRequest struct {
//	    Field string  `path:"field"`
//	    Phone *string `form:"phone"`
//	}
//
//	r.Post("/fields/{field}", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, FieldRequest](
//	        binder.Path(chi.URLParam),
//	        binder.Form(),
//	    ),
//	))
//
// Supported field types are string, signed integers, bool and pointers to
// them. Binding errors wrap ErrInvalidForm, ErrInvalidPath,
// ErrMissingContentType or ErrUnsupportedMediaType.
package binder
