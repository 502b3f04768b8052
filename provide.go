package thimble

import (
	"context"

	"github.com/go-thimble/thimble/internal/errkit"
)

// Provide registers a factory for T under [Key], so the service can be
// resolved with [Invoke] without naming the key by hand.
//
// Example:
//
//	err := thimble.Provide(c, func(ctx context.Context, r thimble.Resolver) (*Server, error) {
//		cfg, err := thimble.Invoke[*Config](ctx, r)
//		if err != nil {
//			return nil, err
//		}
//		return NewServer(cfg), nil
//	})
//
// Available options:
//   - [Singleton] and [Transient] (or [WithScope]) set the provider's scope.
//   - [WithTags] adds the key to tag groups.
func Provide[T any](c *Container, fn func(ctx context.Context, r Resolver) (T, error), opts ...RegisterOption) error {
	key := Key[T]()
	if fn == nil {
		return errkit.Errorf("thimble.Provide %q: fn is nil", key)
	}

	return c.Register(key, func(ctx context.Context, r Resolver) (any, error) {
		return fn(ctx, r)
	}, opts...)
}

// ProvideValue registers a provider for T under [Key] whose factory returns
// the prebuilt value. The default [Singleton] scope makes every resolve
// return value; an [Override] still wins over it.
func ProvideValue[T any](c *Container, value T, opts ...RegisterOption) error {
	return c.Register(Key[T](), func(context.Context, Resolver) (any, error) {
		return value, nil
	}, opts...)
}

// Override stores value in the instance cache under [Key], bypassing any
// factory registered for T. See [Container.Override].
func Override[T any](c *Container, value T) {
	c.Override(Key[T](), value)
}
