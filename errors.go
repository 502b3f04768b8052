package thimble

import (
	"errors"
)

// ErrNotRegistered is returned by [Container.Resolve] when a key has neither
// a registered provider nor an instance stored with [Container.Override].
//
// Use [errors.Is] to test for it:
//
//	_, err := c.Resolve(ctx, "mailer")
//	if errors.Is(err, thimble.ErrNotRegistered) {
//		// ...
//	}
var ErrNotRegistered = errors.New("service not registered")
