package snapshot

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/growthfit/compress"
	"github.com/arloliu/growthfit/endian"
	"github.com/arloliu/growthfit/metrics"
	"github.com/arloliu/growthfit/plate"
)

const (
	// formatVersion is bumped on incompatible layout changes.
	formatVersion = 1

	// headerSize is the fixed byte length of the snapshot header:
	// magic(4) + version(1) + compression(1) + reserved(2) +
	// checksum(8) + body length(4).
	headerSize = 20
)

// magic identifies a growthfit snapshot stream.
var magic = [4]byte{'G', 'F', 'S', '1'}

// nullableFloat marshals non-finite values as JSON null. encoding/json
// rejects NaN and infinities outright, and failed plate rows carry NaN
// metrics, so the sentinel has to survive the trip explicitly.
type nullableFloat float64

func (f nullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(v)
}

func (f *nullableFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nullableFloat(math.NaN())
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = nullableFloat(v)

	return nil
}

type rowJSON struct {
	Sample string        `json:"sample"`
	K      nullableFloat `json:"k"`
	N0     nullableFloat `json:"n0"`
	R      nullableFloat `json:"r"`
	TMid   nullableFloat `json:"t_mid"`
	TGen   nullableFloat `json:"t_gen"`
	AUCL   nullableFloat `json:"auc_l"`
	AUCE   nullableFloat `json:"auc_e"`
	Sigma  nullableFloat `json:"sigma"`
	DF     int           `json:"df"`
	Note   string        `json:"note"`
}

type bodyJSON struct {
	Fingerprint uint64    `json:"fingerprint"`
	Rows        []rowJSON `json:"rows"`
}

// Encode serializes a plate result into a self-describing snapshot:
// a fixed header followed by the compressed JSON body. The checksum in
// the header covers the compressed body, so corruption is detected
// before decompression is attempted.
func Encode(result *plate.Result, compression compress.CompressionType) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("snapshot: nil result")
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	body := bodyJSON{
		Fingerprint: result.Fingerprint,
		Rows:        make([]rowJSON, len(result.Rows)),
	}
	for i, row := range result.Rows {
		m := row.Metrics
		body.Rows[i] = rowJSON{
			Sample: row.Sample,
			K:      nullableFloat(m.K),
			N0:     nullableFloat(m.N0),
			R:      nullableFloat(m.R),
			TMid:   nullableFloat(m.TMid),
			TGen:   nullableFloat(m.TGen),
			AUCL:   nullableFloat(m.AUCLogistic),
			AUCE:   nullableFloat(m.AUCEmpirical),
			Sigma:  nullableFloat(m.Sigma),
			DF:     m.DF,
			Note:   m.Note,
		}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode body: %w", err)
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress body: %w", err)
	}

	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, headerSize+len(compressed))
	buf = append(buf, magic[:]...)
	buf = append(buf, formatVersion, byte(compression), 0, 0)
	buf = engine.AppendUint64(buf, xxhash.Sum64(compressed))
	buf = engine.AppendUint32(buf, uint32(len(compressed))) //nolint:gosec
	buf = append(buf, compressed...)

	return buf, nil
}

// Decode parses a snapshot produced by Encode and reconstructs the
// plate result, including NaN metrics on failed rows.
func Decode(data []byte) (*plate.Result, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("snapshot: truncated header: %d bytes", len(data))
	}

	if [4]byte(data[:4]) != magic {
		return nil, fmt.Errorf("snapshot: bad magic %q", data[:4])
	}

	if data[4] != formatVersion {
		return nil, fmt.Errorf("snapshot: unsupported version %d", data[4])
	}

	compression := compress.CompressionType(data[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	checksum := engine.Uint64(data[8:16])
	bodyLen := int(engine.Uint32(data[16:20]))

	if len(data) != headerSize+bodyLen {
		return nil, fmt.Errorf("snapshot: body length mismatch: header says %d, have %d", bodyLen, len(data)-headerSize)
	}

	compressed := data[headerSize:]
	if xxhash.Sum64(compressed) != checksum {
		return nil, fmt.Errorf("snapshot: checksum mismatch")
	}

	raw, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress body: %w", err)
	}

	var body bodyJSON
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("snapshot: decode body: %w", err)
	}

	result := &plate.Result{
		Fingerprint: body.Fingerprint,
		Rows:        make([]plate.Row, len(body.Rows)),
	}
	for i, row := range body.Rows {
		result.Rows[i] = plate.Row{
			Sample: row.Sample,
			Metrics: metrics.Metrics{
				K:            float64(row.K),
				N0:           float64(row.N0),
				R:            float64(row.R),
				TMid:         float64(row.TMid),
				TGen:         float64(row.TGen),
				AUCLogistic:  float64(row.AUCL),
				AUCEmpirical: float64(row.AUCE),
				Sigma:        float64(row.Sigma),
				DF:           row.DF,
				Note:         row.Note,
			},
		}
	}

	return result, nil
}
