// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct filled by binders and
// returns a Response. Templ responses render a full HTML page for regular
// requests and SSE element patches for Datastar requests, so one handler
// serves both the no-JavaScript form post and the live-updating page.
// Errors from binding or rendering go to an ErrorHandler; NewErrorHandler
// renders an error page or a toast depending on the request.
package handler
