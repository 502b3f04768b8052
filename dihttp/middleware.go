package dihttp

import (
	"net/http"

	"github.com/go-thimble/thimble"
	"github.com/go-thimble/thimble/dicontext"
)

// Middleware returns HTTP middleware that stores c on each request's
// context. Handlers then resolve services with [dicontext.Resolve] or
// [dicontext.MustResolve].
//
// Middleware panics if c is nil, since every wrapped request would fail.
func Middleware(c *thimble.Container) func(http.Handler) http.Handler {
	if c == nil {
		panic("dihttp.Middleware: container is nil")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := dicontext.With(r.Context(), c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
