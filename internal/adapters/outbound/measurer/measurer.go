package measurer

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"

	"github.com/ragicss/sizebudget/internal/domain"
)

// GzipMeasurer implements domain.SizeMeasurer. The compressed size is the
// length of a complete gzip stream at the default compression level, which
// is what a web server sends for a static stylesheet.
type GzipMeasurer struct {
	level int
}

// New creates a GzipMeasurer using gzip.DefaultCompression.
func New() *GzipMeasurer {
	return &GzipMeasurer{level: gzip.DefaultCompression}
}

// Measure returns both sizes and a BLAKE3 digest of content.
func (m *GzipMeasurer) Measure(content []byte) (domain.Measurement, error) {
	compressed, err := m.compressedLen(content)
	if err != nil {
		return domain.Measurement{}, err
	}

	sum := blake3.Sum256(content)
	return domain.Measurement{
		UncompressedBytes: int64(len(content)),
		CompressedBytes:   compressed,
		Digest:            hex.EncodeToString(sum[:]),
	}, nil
}

func (m *GzipMeasurer) compressedLen(content []byte) (int64, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, m.level)
	if err != nil {
		return 0, fmt.Errorf("creating gzip writer: %w", err)
	}
	if _, err := zw.Write(content); err != nil {
		return 0, fmt.Errorf("compressing: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("flushing gzip stream: %w", err)
	}
	return int64(buf.Len()), nil
}
