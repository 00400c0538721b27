package shell

import (
	"io"
	"os"
	"path/filepath"
)

type DiskFileSystem struct{ root string }

func NewDiskFileSystem(root string) *DiskFileSystem {
	return &DiskFileSystem{root: filepath.Clean(root)}
}

// Create truncates any existing file at path.
func (this *DiskFileSystem) Create(path string) (io.WriteCloser, error) {
	path = this.resolve(path)
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(this.resolve(path))
}

func (this *DiskFileSystem) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(this.root, path)
}
