package thimble

import (
	"context"
	"slices"

	"github.com/go-thimble/thimble/internal/errkit"
)

// WithTags adds the registered key to the given tag groups, so it is
// included when the tag is resolved with [Container.Tagged].
//
// Example:
//
//	c.Register("sales-report", newSalesReport, thimble.WithTags("reports"))
//	c.Register("usage-report", newUsageReport, thimble.WithTags("reports"))
//
//	reports, err := c.Tagged(ctx, "reports")
func WithTags(tags ...string) RegisterOption {
	return tagsOption(tags)
}

type tagsOption []string

func (o tagsOption) applyProvider(p *providerEntry) error {
	for _, tag := range o {
		if tag == "" {
			return errkit.New("with tags: tag is empty")
		}
	}

	p.tags = append(p.tags, o...)
	return nil
}

var _ RegisterOption = tagsOption{}

// Tag adds key to the given tag groups. The key does not have to be
// registered yet; [Container.Tagged] reports an error for members that are
// still unregistered when the tag is resolved.
func (c *Container) Tag(key string, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key = c.canonicalLocked(key)
	for _, tag := range tags {
		c.tagLocked(tag, key)
	}
}

// tagLocked adds key to a tag group, keeping the group duplicate-free.
// Requires c.mu to be held for writing.
func (c *Container) tagLocked(tag, key string) {
	if slices.Contains(c.tags[tag], key) {
		return
	}
	c.tags[tag] = append(c.tags[tag], key)
}

// Tagged resolves every key in the tag group, in the order the keys were
// tagged. The first failing member fails the whole call. An unknown tag
// yields an empty slice.
func (c *Container) Tagged(ctx context.Context, tag string) ([]any, error) {
	c.mu.RLock()
	keys := slices.Clone(c.tags[tag])
	c.mu.RUnlock()

	vals := make([]any, 0, len(keys))
	for _, key := range keys {
		val, err := c.Resolve(ctx, key)
		if err != nil {
			return nil, errkit.Wrapf(err, "thimble.Container.Tagged %q", tag)
		}
		vals = append(vals, val)
	}

	return vals, nil
}
