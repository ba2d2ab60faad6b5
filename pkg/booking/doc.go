// Package booking implements the booking form: the fixed set of fields,
// per-edit and submit-time validation, and the single-flight hand-off of a
// valid form to a mail dispatcher.
//
// A Form moves between two statuses:
//
//	idle --submit (valid)--> submitting --dispatcher returns--> idle
//
// Edits are validated one field at a time with lenient rules (empty values
// pass). Submit applies the strict rules to every field and replaces all
// messages. Only a valid form leaves idle, and only one dispatch per form can
// be in flight.
//
//	reg := booking.NewRegistry(1000, booking.NewMailDispatcher(sender, creds), log)
//	form := reg.Form(visitorID)
//	if msg, _ := form.Change(booking.FieldPhone, "12345"); msg != "" {
//		// show msg next to the phone input
//	}
//	outcome, err := form.Submit(ctx)
package booking
