package dihttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-thimble/thimble"
	"github.com/go-thimble/thimble/dicontext"
	"github.com/go-thimble/thimble/dihttp"
	"github.com/go-thimble/thimble/internal/testtypes"
	"github.com/go-thimble/thimble/internal/testutils"
)

func Test_Middleware(t *testing.T) {
	t.Run("handler resolves from the request context", func(t *testing.T) {
		c, err := thimble.NewContainer(
			thimble.WithProvider("logger", func(context.Context, thimble.Resolver) (any, error) {
				return testtypes.NewLogger(), nil
			}),
		)
		require.NoError(t, err)

		mw := dihttp.Middleware(c)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger, resolveErr := dicontext.Resolve[*testtypes.LoggerImpl](r.Context(), "logger")
			assert.NotNil(t, logger)
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("requests share the container's singletons", func(t *testing.T) {
		c, err := thimble.NewContainer(
			thimble.WithProvider("logger", func(context.Context, thimble.Resolver) (any, error) {
				return testtypes.NewLogger(), nil
			}),
		)
		require.NoError(t, err)

		mw := dihttp.Middleware(c)

		loggers := make([]*testtypes.LoggerImpl, 0, 2)
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := dicontext.MustResolve[*testtypes.LoggerImpl](r.Context(), "logger")
			loggers = append(loggers, logger)

			w.WriteHeader(http.StatusOK)
		})

		wrapped := mw(handler)
		RunRequest(t, wrapped, "/")
		RunRequest(t, wrapped, "/")

		require.Len(t, loggers, 2)
		assert.Same(t, loggers[0], loggers[1])
	})

	t.Run("concurrent requests", func(t *testing.T) {
		const concurrency = 100

		c, err := thimble.NewContainer(
			thimble.WithProvider("logger", func(context.Context, thimble.Resolver) (any, error) {
				return testtypes.NewLogger(), nil
			}),
		)
		require.NoError(t, err)

		handler := dihttp.Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger, resolveErr := dicontext.Resolve[*testtypes.LoggerImpl](r.Context(), "logger")
			assert.NotNil(t, logger)
			assert.NoError(t, resolveErr)
		}))

		results := make([]int, concurrency)
		testutils.RunParallel(concurrency, func(i int) {
			results[i] = RunRequest(t, handler, "/")
		})

		for _, code := range results {
			assert.Equal(t, http.StatusOK, code)
		}
	})

	t.Run("chi router", func(t *testing.T) {
		c, err := thimble.NewContainer(
			thimble.WithProvider("greeting", func(context.Context, thimble.Resolver) (any, error) {
				return "hello", nil
			}),
		)
		require.NoError(t, err)

		r := chi.NewRouter()
		r.Use(dihttp.Middleware(c))
		r.Get("/greetings/{name}", func(w http.ResponseWriter, req *http.Request) {
			greeting := dicontext.MustResolve[string](req.Context(), "greeting")
			_, _ = w.Write([]byte(greeting + ", " + chi.URLParam(req, "name")))
		})

		res := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/greetings/go", http.NoBody)
		require.NoError(t, err)

		r.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "hello, go", res.Body.String())
	})

	t.Run("nil container", func(t *testing.T) {
		assert.PanicsWithValue(t, "dihttp.Middleware: container is nil", func() {
			_ = dihttp.Middleware(nil)
		})
	})
}

func RunRequest(t *testing.T, h http.Handler, path string) int {
	t.Helper()

	res := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, http.NoBody)
	require.NoError(t, err)

	h.ServeHTTP(res, req)
	return res.Code
}
