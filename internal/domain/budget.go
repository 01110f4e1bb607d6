package domain

// KiB is the display unit for sizes and the unit the default ceilings are
// expressed in.
const KiB int64 = 1024

// Budget is a pair of ceilings applied to one artifact.
type Budget struct {
	MaxUncompressedBytes int64 `json:"max_uncompressed_bytes" yaml:"max_uncompressed_bytes"`
	MaxCompressedBytes   int64 `json:"max_compressed_bytes"   yaml:"max_compressed_bytes"`
}

// DefaultBudget is the policy for the CSS bundle: 15 KiB raw, 5 KiB gzipped.
func DefaultBudget() Budget {
	return Budget{
		MaxUncompressedBytes: 15 * KiB,
		MaxCompressedBytes:   5 * KiB,
	}
}

// Evaluate compares a measured size against a ceiling. Equal to the ceiling
// passes; only strictly greater fails.
func Evaluate(metric Metric, measured, ceiling int64) Evaluation {
	verdict := VerdictPass
	if measured > ceiling {
		verdict = VerdictFail
	}
	return Evaluation{
		Metric:   metric,
		Measured: measured,
		Ceiling:  ceiling,
		Headroom: ceiling - measured,
		Verdict:  verdict,
	}
}

// EvaluateMeasurement runs both metric checks for one artifact, uncompressed
// first. The two checks are independent of each other.
func EvaluateMeasurement(m Measurement, b Budget) []Evaluation {
	return []Evaluation{
		Evaluate(MetricUncompressed, m.UncompressedBytes, b.MaxUncompressedBytes),
		Evaluate(MetricCompressed, m.CompressedBytes, b.MaxCompressedBytes),
	}
}
