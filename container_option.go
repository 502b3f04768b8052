package thimble

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-thimble/thimble/internal/errkit"
)

// ContainerOption is used to configure a new [Container] when calling
// [NewContainer].
type ContainerOption interface {
	order() optionOrder
	applyContainer(*Container) error
}

// Options apply in a fixed precedence rather than argument order: the logger
// first, then providers, instances, aliases, and extenders. Options with the
// same precedence keep their argument order.
type optionOrder int8

const (
	orderLogger   optionOrder = iota
	orderProvider optionOrder = iota
	orderInstance optionOrder = iota
	orderAlias    optionOrder = iota
	orderExtender optionOrder = iota
)

func newContainerOption(order optionOrder, fn func(*Container) error) ContainerOption {
	return containerOption{fn: fn, ord: order}
}

type containerOption struct {
	fn  func(*Container) error
	ord optionOrder
}

func (o containerOption) order() optionOrder {
	return o.ord
}

func (o containerOption) applyContainer(c *Container) error {
	return o.fn(c)
}

// WithProvider registers a provider for key, as [Container.Register] does.
//
// Example:
//
//	c, err := thimble.NewContainer(
//		thimble.WithProvider("clock", newClock),
//		thimble.WithProvider("parser", newParser, thimble.Transient),
//	)
func WithProvider(key string, factory Factory, opts ...RegisterOption) ContainerOption {
	return newContainerOption(orderProvider, func(c *Container) error {
		return c.Register(key, factory, opts...)
	})
}

// WithInstance stores a prebuilt instance for key, as [Container.Override]
// does. The instance wins over any [Singleton] provider registered for the
// same key.
func WithInstance(key string, instance any) ContainerOption {
	return newContainerOption(orderInstance, func(c *Container) error {
		if key == "" {
			return errkit.New("with instance: key is empty")
		}

		c.Override(key, instance)
		return nil
	})
}

// WithAlias registers alias as an alternate name for key, as
// [Container.Alias] does.
func WithAlias(alias, key string) ContainerOption {
	return newContainerOption(orderAlias, func(c *Container) error {
		return c.Alias(alias, key)
	})
}

// WithExtend registers an extender for key, as [Container.Extend] does.
// It applies after providers and instances, so the key must be registered
// by another option or before NewContainer runs.
func WithExtend(key string, fn ExtendFunc) ContainerOption {
	return newContainerOption(orderExtender, func(c *Container) error {
		return c.Extend(context.Background(), key, fn)
	})
}

// WithLogger sets the [zerolog.Logger] the container logs events to:
// registrations and overrides at debug level, resolves at trace level.
// The default logger discards everything.
//
// WithLogger applies before other options, so providers registered in the
// same NewContainer call are logged.
func WithLogger(log zerolog.Logger) ContainerOption {
	return newContainerOption(orderLogger, func(c *Container) error {
		c.log = log
		return nil
	})
}
