package compress

// ZstdCodec applies Zstandard compression: the best ratio of the built-in
// codecs, suited to archival snapshots that are written once and read
// rarely.
//
// Two implementations back this type. With cgo enabled, the valyala/gozstd
// bindings to the reference C library are used; pure-Go builds fall back to
// klauspost/compress/zstd. The two produce interchangeable payloads.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
