package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexora/internal/config"
	"lexora/internal/domain"
)

func newExtractor(maxMB int64) *FileExtractor {
	return NewFileExtractor(&config.ExtractConfig{MaxFileSizeMB: maxMB})
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtract_Txt(t *testing.T) {
	path := writeTempFile(t, "contract.txt", "  Payment is due in thirty days.\n")

	out, err := newExtractor(20).Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "Payment is due in thirty days.", out.Text)
	assert.Equal(t, 1, out.PageCount)
	assert.Equal(t, 1.0, out.Confidence)
}

func TestExtract_EmptyTxt(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "   \n  ")

	_, err := newExtractor(20).Extract(path)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_UnsupportedType(t *testing.T) {
	path := writeTempFile(t, "notes.docx", "whatever")

	_, err := newExtractor(20).Extract(path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestExtract_FileNotFound(t *testing.T) {
	_, err := newExtractor(20).Extract(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestExtract_FileTooLarge(t *testing.T) {
	big := make([]byte, 2*1024*1024)
	for i := range big {
		big[i] = 'a'
	}
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, big, 0o600))

	_, err := newExtractor(1).Extract(path)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestExtract_ExtensionCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "CONTRACT.TXT", "Payment is due in thirty days.")

	out, err := newExtractor(20).Extract(path)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Text)
}

func TestPrintableRatio(t *testing.T) {
	assert.Equal(t, 1.0, printableRatio(""))
	assert.Equal(t, 1.0, printableRatio("clean text"))
	assert.Less(t, printableRatio("text\x00with\x01junk"), 1.0)
}
