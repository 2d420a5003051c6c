package hashset

import "github.com/cespare/xxhash/v2"

// Hasher maps the byte form of a configuration to a 32-bit hash.
// It must be deterministic and depend on every byte of key.
type Hasher func(key []byte) uint32

// OneAtATime is Bob Jenkins' one-at-a-time hash. Every input byte is mixed
// into the state and the final avalanche spreads it across all 32 bits.
func OneAtATime(key []byte) uint32 {
	var h uint32
	for _, c := range key {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15

	return h
}

// XXHash folds the 64-bit xxHash of key into 32 bits.
func XXHash(key []byte) uint32 {
	h := xxhash.Sum64(key)

	return uint32(h) ^ uint32(h>>32)
}

// primes is the capacity ladder: the largest prime of the form 2^k - w for k = 8..31.
var primes = [...]int{
	251,        // 2^8  - 5
	509,        // 2^9  - 3
	1021,       // 2^10 - 3
	2039,       // 2^11 - 9
	4093,       // 2^12 - 3
	8191,       // 2^13 - 1
	16381,      // 2^14 - 3
	32749,      // 2^15 - 19
	65521,      // 2^16 - 15
	131071,     // 2^17 - 1
	262139,     // 2^18 - 5
	524287,     // 2^19 - 1
	1048573,    // 2^20 - 3
	2097143,    // 2^21 - 9
	4194301,    // 2^22 - 3
	8388593,    // 2^23 - 15
	16777213,   // 2^24 - 3
	33554393,   // 2^25 - 39
	67108859,   // 2^26 - 5
	134217689,  // 2^27 - 39
	268435399,  // 2^28 - 57
	536870909,  // 2^29 - 3
	1073741789, // 2^30 - 35
	2147483647, // 2^31 - 1
}

// Prime returns the smallest ladder prime strictly greater than limit, or the
// first rung when limit is below it. The boolean is false when limit is at or
// beyond the top of the ladder.
func Prime(limit int) (int, bool) {
	for _, p := range primes {
		if p > limit {
			return p, true
		}
	}

	return 0, false
}
