package thimble

import (
	"context"
	"reflect"

	"github.com/go-thimble/thimble/internal/errkit"
)

// Resolve resolves key from r and asserts the result to T.
//
// Example:
//
//	logger, err := thimble.Resolve[*slog.Logger](ctx, c, "logger")
func Resolve[T any](ctx context.Context, r Resolver, key string) (T, error) {
	var zero T

	val, err := r.Resolve(ctx, key)
	if err != nil {
		return zero, err
	}

	out, ok := val.(T)
	if !ok {
		return zero, errkit.Errorf("thimble.Resolve %q: service is %T, not %s",
			key, val, reflect.TypeOf((*T)(nil)).Elem())
	}

	return out, nil
}

// MustResolve resolves key from r and asserts the result to T.
//
// It panics if the key cannot be resolved or the instance is not a T.
func MustResolve[T any](ctx context.Context, r Resolver, key string) T {
	val, err := Resolve[T](ctx, r, key)
	if err != nil {
		panic(err)
	}
	return val
}

// TryResolve resolves key from r, returning the zero value and false if the
// key is missing, the factory fails, or the instance is not a T. Use it for
// optional dependencies.
//
//	if metrics, ok := thimble.TryResolve[*Metrics](ctx, c, "metrics"); ok {
//		metrics.Add(1)
//	}
func TryResolve[T any](ctx context.Context, r Resolver, key string) (T, bool) {
	val, err := Resolve[T](ctx, r, key)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Invoke resolves the service registered for T under [Key].
//
// Example:
//
//	server, err := thimble.Invoke[*Server](ctx, c)
func Invoke[T any](ctx context.Context, r Resolver) (T, error) {
	return Resolve[T](ctx, r, Key[T]())
}

// MustInvoke resolves the service registered for T under [Key].
//
// It panics if the service cannot be resolved.
func MustInvoke[T any](ctx context.Context, r Resolver) T {
	return MustResolve[T](ctx, r, Key[T]())
}
