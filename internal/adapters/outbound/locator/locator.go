package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ragicss/sizebudget/internal/domain"
)

// FileLocator implements domain.ArtifactLocator on the local filesystem.
type FileLocator struct{}

// New creates a FileLocator.
func New() *FileLocator { return &FileLocator{} }

// Locate reads dir/name once. A file that does not exist yields Found=false
// and no error; any other failure (permissions, a directory in its place)
// is returned so the run can abort.
func (l *FileLocator) Locate(dir, name string) (domain.LocatedArtifact, error) {
	path := filepath.Join(dir, name)
	located := domain.LocatedArtifact{Name: name, Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return located, nil
		}
		return domain.LocatedArtifact{}, fmt.Errorf("reading %s: %w", path, err)
	}

	located.Found = true
	located.Content = content
	return located, nil
}
