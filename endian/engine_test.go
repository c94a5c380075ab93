package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianEngineRoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint32(nil, 0xdeadbeef)
	buf = engine.AppendUint64(buf, 0x0123456789abcdef)

	require.Len(t, buf, 12)
	require.Equal(t, uint32(0xdeadbeef), engine.Uint32(buf[:4]))
	require.Equal(t, uint64(0x0123456789abcdef), engine.Uint64(buf[4:]))
}

func TestEnginesMatchStandardLibrary(t *testing.T) {
	require.Equal(t, binary.ByteOrder(binary.LittleEndian), GetLittleEndianEngine())
	require.Equal(t, binary.ByteOrder(binary.BigEndian), GetBigEndianEngine())
}
