// Package cookie writes and verifies HMAC-signed cookies.
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	mgr.SetSigned(w, "visitor", id)
//	id, err := mgr.GetSigned(r, "visitor") // ErrInvalidSignature if tampered
//
// Several secrets can be configured for rotation: the first one signs, all of
// them verify.
package cookie
