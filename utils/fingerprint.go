package utils

import "hash/fnv"

// U64ToBytes encodes u big-endian, for feeding child fingerprints into a
// parent node's hash.
func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

// FingerprintString hashes s with FNV-1a.
func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
