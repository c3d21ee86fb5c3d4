// Package hash computes the 64-bit series identifiers used to group lines.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given series key.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
