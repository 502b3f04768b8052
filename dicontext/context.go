// Package dicontext attaches a [thimble.Container] to a [context.Context]
// so code far from the wiring — HTTP handlers, middleware, background jobs —
// can resolve services without threading the container through every call.
package dicontext

import (
	"context"

	"github.com/go-thimble/thimble"
	"github.com/go-thimble/thimble/internal/errkit"
)

type containerContextKey struct{}

// With returns a new [context.Context] that carries the provided
// [thimble.Container].
func With(ctx context.Context, c *thimble.Container) context.Context {
	return context.WithValue(ctx, containerContextKey{}, c)
}

// Container returns the [thimble.Container] stored on the
// [context.Context], or nil if there is none.
func Container(ctx context.Context) *thimble.Container {
	if c, ok := ctx.Value(containerContextKey{}).(*thimble.Container); ok {
		return c
	}
	return nil
}

// Resolve resolves key from the [thimble.Container] stored on the
// [context.Context] and asserts the result to T.
func Resolve[T any](ctx context.Context, key string) (T, error) {
	c := Container(ctx)
	if c == nil {
		var zero T
		return zero, errkit.Errorf("resolve %q from context: container not found on context", key)
	}

	val, err := thimble.Resolve[T](ctx, c, key)
	return val, errkit.Wrap(err, "resolve from context")
}

// MustResolve resolves key from the [thimble.Container] stored on the
// [context.Context] and asserts the result to T.
//
// It panics if no container is stored on the context or the key cannot be
// resolved.
func MustResolve[T any](ctx context.Context, key string) T {
	val, err := Resolve[T](ctx, key)
	if err != nil {
		panic(err)
	}
	return val
}
