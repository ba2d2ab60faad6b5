// Package booking serves the booking form over HTTP.
//
// Every visitor is identified by a signed cookie and gets its own form from a
// bounded registry. Field edits are validated live and answered with a patch
// of the field's message slot; submissions validate the whole form, send it
// through the configured dispatcher and answer with the re-rendered form plus
// a toast. Datastar requests receive SSE patches, plain form posts receive
// the full page.
//
//	svc := booking.NewService(registry, cookies, views.New(), errorHandler,
//		booking.WithLimiter(limiter),
//		booking.WithLogger(log),
//	)
//	r.Mount("/", svc.Handle())
package booking
