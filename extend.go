package thimble

import (
	"context"
	"slices"

	"github.com/go-thimble/thimble/internal/errkit"
)

// ExtendFunc decorates an instance produced for a key. It receives the
// instance the factory (or a previous extender) returned and must return the
// instance to use in its place.
type ExtendFunc func(ctx context.Context, r Resolver, instance any) (any, error)

// Extend registers an extender for key. Extenders run in registration order
// after the key's factory: once per singleton construction, on every resolve
// for transients.
//
// If an instance is already cached for key — a resolved singleton or an
// [Container.Override] value — the extender is applied to it immediately and
// the cache is updated, so later resolves observe the decorated instance.
//
// Extend fails with [ErrNotRegistered] if key has neither a provider nor a
// cached instance.
func (c *Container) Extend(ctx context.Context, key string, fn ExtendFunc) error {
	if fn == nil {
		return errkit.Errorf("thimble.Container.Extend %q: fn is nil", key)
	}

	c.mu.Lock()
	key = c.canonicalLocked(key)
	_, registered := c.providers[key]
	c.mu.Unlock()

	cached, hasCached := c.instances.Load(key)
	if !registered && !hasCached {
		return errkit.Wrapf(ErrNotRegistered, "thimble.Container.Extend %q", key)
	}

	c.mu.Lock()
	c.extenders[key] = append(c.extenders[key], fn)
	c.mu.Unlock()

	if hasCached {
		val, err := fn(ctx, c, cached)
		if err != nil {
			return errkit.Wrapf(err, "thimble.Container.Extend %q", key)
		}
		c.instances.Store(key, val)
	}

	c.log.Debug().Str("key", key).Msg("extender registered")

	return nil
}

// applyExtenders runs the extenders registered for key over val.
func (c *Container) applyExtenders(ctx context.Context, key string, val any) (any, error) {
	c.mu.RLock()
	fns := slices.Clone(c.extenders[key])
	c.mu.RUnlock()

	var err error
	for _, fn := range fns {
		val, err = fn(ctx, c, val)
		if err != nil {
			return nil, err
		}
	}

	return val, nil
}
