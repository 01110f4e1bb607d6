package measurer_test

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/measurer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCSS() []byte {
	return []byte(strings.Repeat(".btn{display:inline-block;padding:.5rem 1rem;border-radius:4px}", 200))
}

func TestMeasure_UncompressedIsExactLength(t *testing.T) {
	content := sampleCSS()
	m, err := measurer.New().Measure(content)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), m.UncompressedBytes)
}

func TestMeasure_RepetitiveContentCompresses(t *testing.T) {
	m, err := measurer.New().Measure(sampleCSS())
	require.NoError(t, err)
	assert.Greater(t, m.CompressedBytes, int64(0))
	assert.Less(t, m.CompressedBytes, m.UncompressedBytes/10)
}

func TestMeasure_CompressedSizeIsAValidGzipStream(t *testing.T) {
	content := sampleCSS()
	m, err := measurer.New().Measure(content)
	require.NoError(t, err)

	// Recompress at the same level and confirm the stream round-trips.
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	assert.Equal(t, int64(buf.Len()), m.CompressedBytes)

	zr, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, content, out)
}

func TestMeasure_Empty(t *testing.T) {
	m, err := measurer.New().Measure(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.UncompressedBytes)
	// A gzip stream always carries a header and trailer.
	assert.Greater(t, m.CompressedBytes, int64(0))
	assert.Len(t, m.Digest, 64)
}

func TestMeasure_Idempotent(t *testing.T) {
	content := sampleCSS()
	first, err := measurer.New().Measure(content)
	require.NoError(t, err)
	second, err := measurer.New().Measure(append([]byte(nil), content...))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMeasure_DigestTracksContent(t *testing.T) {
	a, err := measurer.New().Measure([]byte("a{color:red}"))
	require.NoError(t, err)
	b, err := measurer.New().Measure([]byte("a{color:blue}"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, b.Digest)
}

func TestMeasure_IncompressibleContentDoesNotShrink(t *testing.T) {
	content := make([]byte, 8*1024)
	rand.New(rand.NewSource(1)).Read(content)

	m, err := measurer.New().Measure(content)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.CompressedBytes, m.UncompressedBytes)
}
