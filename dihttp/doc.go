/*
Package dihttp provides HTTP middleware that makes a [thimble.Container]
available to request handlers through the request context.

Example:

	package main

	import (
		"net/http"

		"github.com/go-thimble/thimble"
		"github.com/go-thimble/thimble/dicontext"
		"github.com/go-thimble/thimble/dihttp"
	)

	func main() {
		c, err := thimble.NewContainer(
			thimble.WithProvider("greeter", newGreeter),
		)
		if err != nil {
			panic(err)
		}

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			greeter := dicontext.MustResolve[*Greeter](r.Context(), "greeter")
			greeter.Greet(w, r)
		})

		http.Handle("/", dihttp.Middleware(c)(handler))
		http.ListenAndServe(":8080", nil)
	}
*/
package dihttp
