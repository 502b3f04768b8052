// Package thimbletest provides helpers for wiring containers in tests.
//
// The helpers fail the test instead of returning errors, so test setup stays
// flat:
//
//	func TestHandler(t *testing.T) {
//		c := thimbletest.NewContainer(t, appModule)
//		thimbletest.Override(t, c, testtypes.Logger(&fakeLogger{}))
//
//		h := thimbletest.MustInvoke[*Handler](t, c)
//		// ...
//	}
package thimbletest

import (
	"context"

	"github.com/go-thimble/thimble"
)

// TB is the subset of [testing.TB] used by this package.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// NewContainer builds a [thimble.Container] from the given options and fails
// the test if construction fails.
func NewContainer(tb TB, opts ...thimble.ContainerOption) *thimble.Container {
	tb.Helper()

	c, err := thimble.NewContainer(opts...)
	if err != nil {
		tb.Fatalf("thimbletest: new container: %v", err)
	}

	return c
}

// MustResolve resolves key from c and fails the test if the key cannot be
// resolved or the instance is not a T.
func MustResolve[T any](tb TB, c *thimble.Container, key string) T {
	tb.Helper()

	val, err := thimble.Resolve[T](context.Background(), c, key)
	if err != nil {
		tb.Fatalf("thimbletest: resolve %q: %v", key, err)
	}

	return val
}

// MustInvoke resolves the service registered for T under [thimble.Key] and
// fails the test if it cannot be resolved.
func MustInvoke[T any](tb TB, c *thimble.Container) T {
	tb.Helper()
	return MustResolve[T](tb, c, thimble.Key[T]())
}

// Override stores value under [thimble.Key], bypassing any factory
// registered for T. It fails the test if nothing is registered or cached
// under the key — an override that targets nothing is almost always a typo.
func Override[T any](tb TB, c *thimble.Container, value T) {
	tb.Helper()
	OverrideKey(tb, c, thimble.Key[T](), value)
}

// OverrideKey is the string-keyed form of [Override].
func OverrideKey(tb TB, c *thimble.Container, key string, value any) {
	tb.Helper()

	if !c.Has(key) {
		tb.Fatalf("thimbletest: override %q: nothing registered", key)
	}

	c.Override(key, value)
}
