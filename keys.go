package thimble

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
)

// typeKeys caches the derived key for each type so repeated Key calls skip
// rebuilding the string.
var typeKeys = xsync.NewMapOf[reflect.Type, string]()

// Key returns the canonical string key for the type T. It lets the typed
// helpers ([Provide], [Invoke], ...) and string-keyed code address the same
// entries:
//
//	thimble.Key[*log.Logger]()   // "*log.Logger"
//	thimble.Key[io.Writer]()     // "io.Writer"
//	thimble.Key[mypkg.Config]()  // "example.com/mypkg.Config"
//
// Named types use their full package path, so keys stay unique across
// packages with the same base name.
func Key[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()

	if key, ok := typeKeys.Load(t); ok {
		return key
	}

	key := buildTypeKey(t)
	typeKeys.Store(t, key)
	return key
}

// KeyNamed returns the key for T qualified with a name, for registering
// several services of one type:
//
//	thimble.KeyNamed[*db.Conn]("primary")  // "*example.com/db.Conn#primary"
func KeyNamed[T any](name string) string {
	return Key[T]() + "#" + name
}

func buildTypeKey(t reflect.Type) string {
	var prefix string
	for t.Kind() == reflect.Pointer {
		prefix += "*"
		t = t.Elem()
	}

	if pkg := t.PkgPath(); pkg != "" {
		return prefix + pkg + "." + t.Name()
	}

	// Builtins and unnamed composites have no package path.
	return prefix + t.String()
}
