package thimble_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-thimble/thimble"
	"github.com/go-thimble/thimble/internal/testtypes"
)

func Test_WithLogger(t *testing.T) {
	t.Run("container events are logged", func(t *testing.T) {
		var buf bytes.Buffer

		c, err := thimble.NewContainer(
			thimble.WithLogger(zerolog.New(&buf)),
			thimble.WithProvider("logger", newLoggerFactory),
		)
		require.NoError(t, err)

		_, err = c.Resolve(context.Background(), "logger")
		require.NoError(t, err)
		c.Override("logger", &testtypes.MockLogger{})

		out := buf.String()
		assert.Contains(t, out, `"message":"provider registered"`)
		assert.Contains(t, out, `"scope":"Singleton"`)
		assert.Contains(t, out, `"message":"resolved"`)
		assert.Contains(t, out, `"message":"override installed"`)
		assert.Contains(t, out, `"key":"logger"`)
	})

	t.Run("applies before other options", func(t *testing.T) {
		var buf bytes.Buffer

		// Argument order does not matter; the logger still sees the
		// registration below.
		_, err := thimble.NewContainer(
			thimble.WithProvider("logger", newLoggerFactory),
			thimble.WithLogger(zerolog.New(&buf)),
		)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"message":"provider registered"`)
	})

	t.Run("default logger discards events", func(t *testing.T) {
		c, err := thimble.NewContainer(
			thimble.WithProvider("logger", newLoggerFactory),
		)
		require.NoError(t, err)

		// Nothing to assert on output; resolving just must not blow up
		// without a configured logger.
		_, err = c.Resolve(context.Background(), "logger")
		assert.NoError(t, err)
	})
}
