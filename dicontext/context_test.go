package dicontext_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-thimble/thimble"
	"github.com/go-thimble/thimble/dicontext"
	"github.com/go-thimble/thimble/internal/testtypes"
)

func Test_Container(t *testing.T) {
	t.Run("with container", func(t *testing.T) {
		c, err := thimble.NewContainer()
		require.NoError(t, err)

		ctx := dicontext.With(context.Background(), c)
		got := dicontext.Container(ctx)

		assert.Same(t, c, got)
	})

	t.Run("no container", func(t *testing.T) {
		ctx := context.Background()
		got := dicontext.Container(ctx)
		assert.Nil(t, got)
	})
}

func Test_Resolve(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		c, err := thimble.NewContainer(
			thimble.WithProvider("logger", func(context.Context, thimble.Resolver) (any, error) {
				return testtypes.NewLogger(), nil
			}),
		)
		require.NoError(t, err)

		ctx := dicontext.With(context.Background(), c)

		got, err := dicontext.Resolve[*testtypes.LoggerImpl](ctx, "logger")
		assert.Equal(t, &testtypes.LoggerImpl{}, got)
		assert.NoError(t, err)
	})

	t.Run("no container", func(t *testing.T) {
		ctx := context.Background()

		got, err := dicontext.Resolve[*testtypes.LoggerImpl](ctx, "logger")
		assert.Nil(t, got)
		assert.EqualError(t, err,
			`resolve "logger" from context: container not found on context`)
	})

	t.Run("resolve error", func(t *testing.T) {
		c, err := thimble.NewContainer()
		require.NoError(t, err)

		ctx := dicontext.With(context.Background(), c)

		got, err := dicontext.Resolve[*testtypes.LoggerImpl](ctx, "logger")
		assert.Nil(t, got)
		assert.EqualError(t, err,
			`resolve from context: thimble.Container.Resolve "logger": service not registered`)
		assert.ErrorIs(t, err, thimble.ErrNotRegistered)
	})
}

func Test_MustResolve(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		c, err := thimble.NewContainer(
			thimble.WithProvider("logger", func(context.Context, thimble.Resolver) (any, error) {
				return testtypes.NewLogger(), nil
			}),
		)
		require.NoError(t, err)

		ctx := dicontext.With(context.Background(), c)

		got := dicontext.MustResolve[*testtypes.LoggerImpl](ctx, "logger")
		assert.Equal(t, &testtypes.LoggerImpl{}, got)
	})

	t.Run("no container", func(t *testing.T) {
		ctx := context.Background()

		assert.PanicsWithError(t, `resolve "logger" from context: container not found on context`, func() {
			_ = dicontext.MustResolve[*testtypes.LoggerImpl](ctx, "logger")
		})
	})

	t.Run("resolve error", func(t *testing.T) {
		c, err := thimble.NewContainer()
		require.NoError(t, err)

		ctx := dicontext.With(context.Background(), c)

		assert.PanicsWithError(t, `resolve from context: thimble.Container.Resolve "logger": service not registered`, func() {
			_ = dicontext.MustResolve[*testtypes.LoggerImpl](ctx, "logger")
		})
	})
}
