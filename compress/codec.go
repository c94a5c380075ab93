package compress

import "fmt"

// CompressionType identifies the codec applied to snapshot payloads.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd applies Zstandard compression.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 applies S2 compression.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 applies LZ4 block compression.
	CompressionLZ4 CompressionType = 0x4
)

// String returns the string representation of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// compressionFromString maps lowercase names to CompressionType.
var compressionFromString = map[string]CompressionType{
	"none": CompressionNone,
	"zstd": CompressionZstd,
	"s2":   CompressionS2,
	"lz4":  CompressionLZ4,
}

// CompressionFromString returns the CompressionType for a given lowercase
// name. The second return value is false for unknown names.
func CompressionFromString(name string) (CompressionType, bool) {
	ct, exists := compressionFromString[name]
	return ct, exists
}

// Codec compresses and decompresses snapshot payloads.
//
// Implementations treat the input slice as read-only and return a slice
// owned by the caller; the no-op codec is the one exception and returns the
// input unchanged. All built-in codecs are safe for concurrent use.
type Codec interface {
	// Compress compresses data and returns the result (nil for empty input).
	Compress(data []byte) ([]byte, error)
	// Decompress reverses Compress, validating the payload format.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, exists := builtinCodecs[compressionType]; exists {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
