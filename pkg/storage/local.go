package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"eduhub.vn/studyportal/pkg/apperror"
)

// MaxUploadSize caps a single uploaded file at 50 MiB.
const MaxUploadSize = 50 << 20

// Upload categories, each mapping to its own directory under the upload root.
const (
	CategoryDocuments   = "documents"
	CategoryAssignments = "assignments"
	CategoryImages      = "images"
)

// SavedFile describes a file persisted by the sink. Name is the generated
// on-disk name, Path the full location. The original client filename is kept
// by the caller so downloads can restore it.
type SavedFile struct {
	Name string
	Path string
	Size int64
}

// FileStorage defines the contract for the upload sink.
type FileStorage interface {
	// Save streams r into the category directory under a collision-resistant
	// generated name and reports where it landed.
	Save(category, originalName string, r io.Reader) (*SavedFile, error)
	// Delete removes a stored file. A file that is already gone is not an error.
	Delete(path string) error
	// Root returns the upload root directory.
	Root() string
}

type localStorage struct {
	root string
}

// NewLocalStorage creates the upload root and one directory per category.
func NewLocalStorage(root string) (FileStorage, error) {
	for _, dir := range []string{
		root,
		filepath.Join(root, CategoryDocuments),
		filepath.Join(root, CategoryAssignments),
		filepath.Join(root, CategoryImages),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
		}
	}

	return &localStorage{root: root}, nil
}

func (s *localStorage) Save(category, originalName string, r io.Reader) (*SavedFile, error) {
	switch category {
	case CategoryDocuments, CategoryAssignments, CategoryImages:
	default:
		return nil, fmt.Errorf("%w: unknown upload category %q", apperror.ErrInvalidInput, category)
	}

	name := GenerateName(originalName)
	path := filepath.Join(s.root, category, name)

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	// Hard stop one byte past the cap so oversized streams cannot fill the disk.
	written, err := io.Copy(out, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(path)
		return nil, apperror.ErrPayloadTooLarge
	}

	return &SavedFile{Name: name, Path: path, Size: written}, nil
}

func (s *localStorage) Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *localStorage) Root() string {
	return s.root
}

// GenerateName builds a collision-resistant on-disk name from the original
// filename: <millisecond-timestamp>-<random-integer>-<original>.
func GenerateName(originalName string) string {
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Base(originalName))
}
