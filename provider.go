package thimble

import (
	"context"

	"github.com/go-thimble/thimble/internal/errkit"
)

// Factory constructs a service instance for a key.
//
// The [Resolver] argument is the container the factory was registered with,
// so a factory can resolve its own dependencies:
//
//	c.Register("api", func(ctx context.Context, r thimble.Resolver) (any, error) {
//		logger, err := r.Resolve(ctx, "logger")
//		if err != nil {
//			return nil, err
//		}
//		return NewAPIService(logger.(*Logger)), nil
//	})
//
// A factory error is returned to the caller of [Container.Resolve] wrapped
// with the key being resolved; [errors.Is] and [errors.As] still match the
// original error.
type Factory func(ctx context.Context, r Resolver) (any, error)

// Resolver is the resolution surface passed to factories and extenders.
// It deliberately exposes no way to mutate the container.
//
// Resolver is implemented by [*Container].
type Resolver interface {
	// Resolve returns the instance for key.
	Resolve(ctx context.Context, key string) (any, error)

	// Has returns true if key has a provider or a cached instance.
	Has(key string) bool
}

// RegisterOption configures a provider entry when calling
// [Container.Register], [WithProvider], [Provide], or [ProvideValue].
//
// Available options:
//   - [Singleton] and [Transient] (or [WithScope]) set the provider's scope.
//   - [WithTags] adds the key to tag groups.
type RegisterOption interface {
	applyProvider(*providerEntry) error
}

// providerEntry is the stored definition for a key: how to build the service
// and whether to cache it. Entries are replaced wholesale when a key is
// registered again.
type providerEntry struct {
	factory Factory
	scope   Scope
	tags    []string
}

func newProviderEntry(factory Factory, opts []RegisterOption) (*providerEntry, error) {
	if factory == nil {
		return nil, errkit.New("factory is nil")
	}

	p := &providerEntry{
		factory: factory,
		scope:   Singleton,
	}

	err := applyOptions(opts, func(opt RegisterOption) error {
		return opt.applyProvider(p)
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}
