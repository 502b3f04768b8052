package thimble

import "slices"

// A Module is a collection of container options.
// It can be used to export a re-usable group of related providers.
//
// Example:
//
//	var StorageModule = thimble.Module{
//		thimble.WithProvider("db", newDB),
//		thimble.WithProvider("store", newStore),
//		thimble.WithAlias("repository", "store"),
//	}
type Module []ContainerOption

func (Module) applyContainer(*Container) error { return nil }
func (Module) order() optionOrder              { return 0 }

// WithModule applies the options in a [Module] when calling [NewContainer].
//
// Example:
//
//	c, err := thimble.NewContainer(
//		thimble.WithModule(StorageModule),
//		thimble.WithProvider("handler", newHandler),
//	)
func WithModule(m Module) ContainerOption {
	return m
}

// flattenModules expands modules, including nested ones. The Module elements
// stay in the slice; applying them is a no-op.
func flattenModules(opts []ContainerOption) []ContainerOption {
	for i := 0; i < len(opts); i++ {
		if mod, ok := opts[i].(Module); ok {
			opts = slices.Insert(opts, i+1, mod...)
		}
	}

	return opts
}
