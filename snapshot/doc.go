// Package snapshot serializes plate results into a compact, self-describing
// binary format suitable for caching fitted plates or shipping them between
// services.
//
// # Layout
//
// A snapshot is a 20-byte header followed by a compressed JSON body:
//
//	magic "GFS1" (4) | version (1) | compression (1) | reserved (2) |
//	xxHash64 of compressed body (8) | body length (4) | body (...)
//
// All header integers are little-endian. The checksum covers the compressed
// body, so corruption is caught before the codec runs. The body is the row
// list plus the plate fingerprint; non-finite metric values are stored as
// JSON null and restored as NaN on decode, so failed rows survive the round
// trip intact.
//
// # Compression
//
// The compression byte selects one of the codecs from the compress package
// (none, zstd, s2, lz4). Decode dispatches on the byte alone; the caller does
// not need to know which codec produced a snapshot.
package snapshot
