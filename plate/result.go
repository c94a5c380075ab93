package plate

import "github.com/arloliu/growthfit/metrics"

// Row pairs a sample name with its derived metrics. Failed samples carry
// the NaN sentinel metrics with a note describing the failure.
type Row struct {
	Sample  string
	Metrics metrics.Metrics
}

// Result is the assembled plate output: exactly one row per sample column
// of the input table, in input column order, regardless of how many
// individual fits failed. Fingerprint identifies the input table the rows
// were computed from.
type Result struct {
	Rows        []Row
	Fingerprint uint64
}

// Sample returns the row for the named sample. The second return value is
// false when the plate has no such sample.
func (r *Result) Sample(name string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Sample == name {
			return row, true
		}
	}

	return Row{}, false
}
