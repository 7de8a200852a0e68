package hashtable

import "github.com/cespare/xxhash/v2"

// Hasher maps a key to a 64-bit hash value. Tables reduce it to a slot index.
type Hasher[K any] func(K) uint64

// knuthS is ⌊A·2^64⌋ for A = (√5−1)/2, the multiplier suggested by Knuth.
const knuthS uint64 = 0x9E3779B97F4A7C15

// Division is the division method h(k) = k mod m. m must be positive.
func Division(k uint64, m int) int {
	return int(k % uint64(m))
}

// Multiplication is the multiplication method for a table of 2^p slots:
// take the low 64 bits of k·s, where s = A·2^64, and keep the top p bits.
// p must lie in [0, 64]; p == 0 maps everything to slot 0.
func Multiplication(k uint64, p uint) uint64 {
	if p == 0 {
		return 0
	}

	return (k * knuthS) >> (64 - p)
}

// StringHasher hashes strings with xxHash64.
func StringHasher(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Integer is the set of key types accepted by IntHasher.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHasher scrambles an integer key with the multiplication method so that
// the low bits used for slot selection depend on every input bit.
func IntHasher[K Integer](k K) uint64 {
	h := uint64(k) * knuthS

	return h ^ (h >> 32)
}
