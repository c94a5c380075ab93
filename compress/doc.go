// Package compress provides the compression codecs used by snapshot
// payloads.
//
// Snapshot bodies are JSON row sets: repetitive, highly compressible text.
// Four codecs are built in, selected by CompressionType:
//
//   - None: pass-through, for debugging and tiny plates
//   - Zstd: best ratio, the default choice for archival
//   - S2: fastest, always succeeds, moderate ratio
//   - LZ4: fast block compression
//
// All codecs implement the Codec interface and are safe for concurrent
// use; encoders and decoders with warm-up costs are pooled internally.
package compress
