package controllers

import "net/http"

// Root handles GET /. The storefront pings it as a liveness smoke test and
// expects the plain-text greeting unchanged.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello World!"))
	}
}
