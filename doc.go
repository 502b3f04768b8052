// Package thimble is a small dependency injection container built around
// string keys and factory functions.
//
// A provider is registered for a key with a factory and a [Scope]:
//
//	c, err := thimble.NewContainer()
//	// ...
//	err = c.Register("logger", func(ctx context.Context, r thimble.Resolver) (any, error) {
//		return NewLogger(), nil
//	})
//
// Resolution is lazy. A [Singleton] factory runs at most once and the result
// is cached for the container's lifetime; a [Transient] factory runs on
// every resolve:
//
//	logger, err := c.Resolve(ctx, "logger")
//
// Factories receive a [Resolver], so a service pulls its own dependencies
// from the same container:
//
//	err = c.Register("api", func(ctx context.Context, r thimble.Resolver) (any, error) {
//		logger, err := thimble.Resolve[*Logger](ctx, r, "logger")
//		if err != nil {
//			return nil, err
//		}
//		return NewAPIService(logger), nil
//	})
//
// Tests swap implementations with [Container.Override], which bypasses the
// factory entirely:
//
//	c.Override("logger", &MockLogger{})
//
// The typed helpers ([Provide], [Invoke], [Resolve], ...) derive keys from
// types via [Key], so most code never spells a key string:
//
//	err = thimble.Provide(c, func(ctx context.Context, r thimble.Resolver) (*APIService, error) {
//		logger, err := thimble.Invoke[*Logger](ctx, r)
//		if err != nil {
//			return nil, err
//		}
//		return NewAPIService(logger), nil
//	})
//	api, err := thimble.Invoke[*APIService](ctx, c)
//
// There is no container hierarchy, no disposal lifecycle, and no cycle
// detection: a container is a flat registry that lives as long as the
// program needs it.
package thimble
