package thimble

import "fmt"

// Scope specifies how often a provider's factory runs when its key is
// resolved.
//
// Available scopes:
//   - [Singleton] specifies that the factory runs once and subsequent resolves return the same instance.
//   - [Transient] specifies that the factory runs for every resolve.
type Scope uint8

const (
	// Singleton specifies that the factory runs once, lazily, and subsequent
	// resolves return the cached instance.
	//
	// This is the default scope for providers.
	Singleton Scope = iota

	// Transient specifies that the factory runs for every resolve and the
	// result is never cached.
	Transient Scope = iota
)

// WithScope is used to configure the scope of a provider when calling
// [Container.Register] or [WithProvider].
//
// Example:
//
//	c, err := thimble.NewContainer(
//		thimble.WithProvider("parser", newParser, thimble.WithScope(thimble.Transient)),
//		// A Scope can also be used directly as an option
//		thimble.WithProvider("lexer", newLexer, thimble.Transient),
//	)
func WithScope(scope Scope) RegisterOption {
	return scope
}

func (s Scope) applyProvider(p *providerEntry) error {
	p.scope = s
	return nil
}

var _ RegisterOption = Singleton

func (s Scope) String() string {
	switch s {
	case Singleton:
		return "Singleton"
	case Transient:
		return "Transient"
	default:
		return fmt.Sprintf("Unknown Scope %d", s)
	}
}
