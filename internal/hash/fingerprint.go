// Package hash computes deterministic fingerprints of measurement series.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Series computes the xxHash64 fingerprint of a named float64 series.
//
// The column name, the series length and every value's bit pattern feed the
// digest, so renamed, reordered or edited series produce different
// fingerprints. NaN values hash by their bit pattern like any other value.
func Series(name string, values []float64) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(values)))
	_, _ = d.Write(buf[:])

	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Combine folds an ordered set of fingerprints into one. Order matters:
// swapping two inputs changes the result.
func Combine(fingerprints ...uint64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, fp := range fingerprints {
		binary.LittleEndian.PutUint64(buf[:], fp)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
