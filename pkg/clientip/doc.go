// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are consulted in priority order (DefaultHeaders: CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For, X-Real-IP) before falling back to
// RemoteAddr. Use New with an explicit header list when the deployment
// fronts the service with a different proxy, or with none at all.
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	...
//	ip := clientip.FromRequest(req)
package clientip
