package thimble

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"

	"github.com/go-thimble/thimble/internal/errkit"
)

// Container is a dependency injection container. It maps string keys to
// providers and hands out instances on demand: lazily-built singletons,
// per-call transients, and instances installed directly with
// [Container.Override].
type Container struct {
	mu        sync.RWMutex
	providers map[string]*providerEntry
	aliases   map[string]string
	tags      map[string][]string
	extenders map[string][]ExtendFunc

	// instances holds resolved singletons and overridden values.
	// Transient resolution never reads or writes it.
	instances *xsync.MapOf[string, any]

	log zerolog.Logger
}

var _ Resolver = (*Container)(nil)

// NewContainer creates a new [Container] with the provided options.
//
// Available options:
//   - [WithProvider] registers a provider for a key.
//   - [WithInstance] stores a prebuilt instance for a key.
//   - [WithAlias] registers an alternate name for a key.
//   - [WithExtend] registers an extender for a key.
//   - [WithLogger] sets the logger used for container events.
//   - [Module] groups options so subsystems can export their wiring.
func NewContainer(opts ...ContainerOption) (*Container, error) {
	c := &Container{
		providers: make(map[string]*providerEntry),
		aliases:   make(map[string]string),
		tags:      make(map[string][]string),
		extenders: make(map[string][]ExtendFunc),
		instances: xsync.NewMapOf[string, any](),
		log:       zerolog.Nop(),
	}

	err := c.applyContainerOptions(opts)
	if err != nil {
		return nil, errkit.Wrap(err, "thimble.NewContainer")
	}

	return c, nil
}

func (c *Container) applyContainerOptions(opts []ContainerOption) error {
	// Flatten any modules before sorting and applying options
	opts = flattenModules(opts)

	// Sort options by precedence so the logger is set before anything that
	// logs, and aliases and extenders see the keys they refer to.
	// Use stable sort because the registration order of providers matters.
	slices.SortStableFunc(opts, func(a, b ContainerOption) int {
		return cmp.Compare(a.order(), b.order())
	})

	var errs errkit.MultiError
	for _, o := range opts {
		errs = errs.Append(o.applyContainer(c))
	}

	return errs.Join()
}

// Register stores or overwrites the provider entry for key.
//
// The default scope is [Singleton]; pass [Transient] to run the factory on
// every resolve. Registering a key again replaces the previous entry, but a
// singleton instance already cached under the key is kept — call
// [Container.Forget] or [Container.Reset] first if the new provider should
// take effect for it.
//
// Available options:
//   - [Singleton] and [Transient] (or [WithScope]) set the provider's scope.
//   - [WithTags] adds the key to tag groups.
func (c *Container) Register(key string, factory Factory, opts ...RegisterOption) error {
	if key == "" {
		return errkit.New("thimble.Container.Register: key is empty")
	}

	p, err := newProviderEntry(factory, opts)
	if err != nil {
		return errkit.Wrapf(err, "thimble.Container.Register %q", key)
	}

	c.mu.Lock()
	// A key with its own provider is canonical again.
	delete(c.aliases, key)
	c.providers[key] = p
	for _, tag := range p.tags {
		c.tagLocked(tag, key)
	}
	c.mu.Unlock()

	c.log.Debug().
		Str("key", key).
		Stringer("scope", p.scope).
		Msg("provider registered")

	return nil
}

// Resolve returns the instance for key.
//
// If key has a [Singleton] provider, the cached instance is returned when
// present; otherwise the factory runs once, its result is cached, and every
// caller receives that one instance. If key has a [Transient] provider, the
// factory runs on every call and nothing is cached. If key has no provider
// but an instance was stored with [Container.Override], that instance is
// returned. Otherwise Resolve fails with [ErrNotRegistered].
//
// The container passes itself to the factory as a [Resolver], so factories
// resolve their own dependencies recursively.
func (c *Container) Resolve(ctx context.Context, key string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errkit.Wrapf(err, "thimble.Container.Resolve %q", key)
	}

	c.mu.RLock()
	key = c.canonicalLocked(key)
	entry := c.providers[key]
	c.mu.RUnlock()

	if entry == nil {
		// An instance installed with Override may exist without a provider.
		if val, ok := c.instances.Load(key); ok {
			return val, nil
		}
		return nil, errkit.Wrapf(ErrNotRegistered, "thimble.Container.Resolve %q", key)
	}

	if entry.scope == Singleton {
		if val, ok := c.instances.Load(key); ok {
			c.log.Trace().Str("key", key).Msg("resolved from cache")
			return val, nil
		}
	}

	val, err := c.build(ctx, key, entry)
	if err != nil {
		return nil, errkit.Wrapf(err, "thimble.Container.Resolve %q", key)
	}

	if entry.scope == Singleton {
		// Concurrent first resolves may each run the factory, but the first
		// stored instance wins and every caller receives it.
		val, _ = c.instances.LoadOrStore(key, val)
	}

	c.log.Trace().
		Str("key", key).
		Stringer("scope", entry.scope).
		Msg("resolved")

	return val, nil
}

// build runs the factory for key and applies any registered extenders.
func (c *Container) build(ctx context.Context, key string, entry *providerEntry) (any, error) {
	val, err := entry.factory(ctx, c)
	if err != nil {
		return nil, err
	}

	return c.applyExtenders(ctx, key, val)
}

// Override unconditionally stores instance in the cache for key, bypassing
// factory and scope logic. A later resolve of a [Singleton] key — or of a
// key with no provider at all — returns instance until another Override,
// [Container.Forget], or [Container.Reset].
//
// Transient resolution never reads the instance cache, so an Override on a
// [Transient] key does not change what its resolves return.
func (c *Container) Override(key string, instance any) {
	c.mu.RLock()
	key = c.canonicalLocked(key)
	c.mu.RUnlock()

	c.instances.Store(key, instance)

	c.log.Debug().Str("key", key).Msg("override installed")
}

// Has returns true if key has a registered provider or a cached instance.
func (c *Container) Has(key string) bool {
	c.mu.RLock()
	key = c.canonicalLocked(key)
	_, ok := c.providers[key]
	c.mu.RUnlock()

	if ok {
		return true
	}

	_, ok = c.instances.Load(key)
	return ok
}

// Keys returns the sorted union of provider keys and cached instance keys.
func (c *Container) Keys() []string {
	seen := make(map[string]struct{})

	c.mu.RLock()
	for key := range c.providers {
		seen[key] = struct{}{}
	}
	c.mu.RUnlock()

	c.instances.Range(func(key string, _ any) bool {
		seen[key] = struct{}{}
		return true
	})

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

// Alias registers alias as an alternate name for key. Resolving, overriding,
// or extending the alias acts on key's entry and cache slot. Registering a
// provider directly under alias removes the link again.
func (c *Container) Alias(alias, key string) error {
	if alias == "" || key == "" {
		return errkit.New("thimble.Container.Alias: key is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.canonicalLocked(key)
	if alias == target {
		return errkit.Errorf("thimble.Container.Alias %q: aliased to itself", alias)
	}
	c.aliases[alias] = target

	return nil
}

// canonicalLocked follows alias links to the canonical key.
// Requires c.mu to be held.
func (c *Container) canonicalLocked(key string) string {
	// Aliases always point at canonical keys, so one hop usually suffices.
	// The bound guards against chains formed by aliasing an existing alias.
	for n := len(c.aliases); n > 0; n-- {
		next, ok := c.aliases[key]
		if !ok {
			break
		}
		key = next
	}
	return key
}

// Forget removes the provider, cached instance, extenders, and tag
// memberships for key. Aliases pointing at key are kept and will fail to
// resolve until the key is registered again.
func (c *Container) Forget(key string) {
	c.mu.Lock()
	key = c.canonicalLocked(key)
	delete(c.providers, key)
	delete(c.extenders, key)
	for tag, keys := range c.tags {
		keys = slices.DeleteFunc(keys, func(k string) bool { return k == key })
		if len(keys) == 0 {
			delete(c.tags, tag)
		} else {
			c.tags[tag] = keys
		}
	}
	c.mu.Unlock()

	c.instances.Delete(key)

	c.log.Debug().Str("key", key).Msg("key forgotten")
}

// Reset clears every cached instance, including ones stored with
// [Container.Override]. Providers, aliases, tags, and extenders are kept,
// so singletons are rebuilt lazily on their next resolve.
func (c *Container) Reset() {
	c.instances.Clear()

	c.log.Debug().Msg("instance cache cleared")
}
