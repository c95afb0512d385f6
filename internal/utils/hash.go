package utils

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
)

// etagSize is the number of digest bytes kept in an entity tag.
const etagSize = 16

// hasherPool is a package-level pool of reusable BLAKE3 hashers.
var hasherPool = sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// Hash computes the 256-bit BLAKE3 digest of data using a hasher pulled from
// the package pool.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(*blake3.Hasher)
	h.Reset()

	_, _ = h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// ContentETag returns a strong HTTP entity tag for data: the quoted hex
// encoding of the first 16 bytes of its BLAKE3 digest.
//
// Example usage:
//
//	w.Header().Set("ETag", utils.ContentETag(body))
func ContentETag(data []byte) string {
	return `"` + hex.EncodeToString(Hash(data)[:etagSize]) + `"`
}

// ETagMatches reports whether an If-None-Match header value matches etag.
// The header may list several tags separated by commas, carry weak
// validators (W/"...") or be the wildcard "*".
func ETagMatches(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
