// Package testutils has helpers shared by the package tests.
package testutils

import (
	"context"
	"sync"
	"testing"
)

// LogError is a test helper function to log an error message if it is not nil.
//
// This is to help make sure our error messages are helpful and informative.
func LogError(t *testing.T, err error) {
	if err == nil {
		return
	}

	t.Helper()
	t.Logf("error message:\n%v", err)
}

type ctxKey struct{}

// ContextWithTestValue returns a context carrying val, for asserting that
// the container passes the caller's context through to factories.
func ContextWithTestValue(ctx context.Context, val any) context.Context {
	return context.WithValue(ctx, ctxKey{}, val)
}

// ValueFromContext returns the value stored by [ContextWithTestValue].
func ValueFromContext(ctx context.Context) any {
	return ctx.Value(ctxKey{})
}

// RunParallel runs a function in parallel with the given concurrency.
func RunParallel(concurrency int, f func(int)) {
	wg := sync.WaitGroup{}
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		i := i
		go func() {
			defer wg.Done()
			f(i)
		}()
	}

	wg.Wait()
}
