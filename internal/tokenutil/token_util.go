// Package tokenutil mints the identity tokens that distinguish sentinels
// from each other.
package tokenutil

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var serial atomic.Uint64 //nolint:gochecknoglobals

// Next returns a fresh identity token plus a process-wide monotonic serial.
// The token carries identity; the serial records creation order (its first
// value is 1). Safe for concurrent use.
func Next() (uuid.UUID, uint64) {
	return uuid.New(), serial.Add(1)
}
