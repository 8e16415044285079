package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWriter() *Writer {
	w := NewWriter()
	w.Now = func() time.Time { return time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC) }
	return w
}

func TestWriteReports_CreatesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	reports := []string{
		"**Destination**: Bali, Indonesia\n**Why**: Beaches\n**Review Summary**: Gorgeous beaches!, Some crowded spots.",
		"Plain second report with São Paulo in it",
	}
	require.NoError(t, fixedWriter().WriteReports(reports, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")), "pdf header")
	assert.NotContains(t, string(b), "stale")
}

func TestWriteReports_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.pdf")
	err := fixedWriter().WriteReports([]string{"x"}, path)
	assert.Error(t, err)
}

func TestRender_Paginates(t *testing.T) {
	long := strings.Repeat("A line of recommendation text.\n", 200)
	b, err := fixedWriter().Render([]string{long})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
	// more than one page object
	assert.Greater(t, bytes.Count(b, []byte("/Type /Page\n")), 1)
}

func TestSplitLabel(t *testing.T) {
	label, rest, ok := splitLabel("**Detailed Expenses**: Hotel $1.00/night")
	require.True(t, ok)
	assert.Equal(t, "Detailed Expenses", label)
	assert.Equal(t, " Hotel $1.00/night", rest)

	for _, s := range []string{"no label", "**unterminated", "****: empty"} {
		_, _, ok := splitLabel(s)
		assert.False(t, ok, s)
	}
}
