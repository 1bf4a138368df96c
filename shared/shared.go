package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and parts into a single namespaced key. Empty
// parts are kept so that positions stay stable.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}
