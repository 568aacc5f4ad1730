package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"eduhub.vn/studyportal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateName(t *testing.T) {
	name := GenerateName("report.pdf")
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+-report\.pdf$`), name)

	// path components in the client filename are stripped
	name = GenerateName("../../etc/passwd")
	assert.True(t, strings.HasSuffix(name, "-passwd"))
	assert.NotContains(t, name, "/")
}

func TestSaveAndDelete(t *testing.T) {
	fs, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	saved, err := fs.Save(CategoryDocuments, "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), saved.Size)
	assert.Equal(t, filepath.Join(fs.Root(), CategoryDocuments, saved.Name), saved.Path)

	raw, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	require.NoError(t, fs.Delete(saved.Path))
	_, err = os.Stat(saved.Path)
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	assert.NoError(t, fs.Delete(saved.Path))
}

func TestSaveRejectsUnknownCategory(t *testing.T) {
	fs, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Save("secrets", "x.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
