package compress

// NoOpCodec bypasses compression entirely. It is useful for debugging
// snapshot contents and for plates small enough that compression overhead
// outweighs the saving.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice unchanged, without copying. The returned
// slice shares the input's memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged, without copying. The
// returned slice shares the input's memory.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
