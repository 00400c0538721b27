package shell

import (
	"io"
	"os"
	"sort"
)

type InMemoryFileSystem struct {
	fileSystem  map[string]*file
	CreateError error
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		fileSystem: make(map[string]*file),
	}
}

func (this *InMemoryFileSystem) Listing() (paths []string) {
	for path := range this.fileSystem {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (this *InMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	if this.CreateError != nil {
		return nil, this.CreateError
	}
	this.WriteFile(path, nil)
	return this.fileSystem[path], nil
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return target.contents, nil
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) {
	this.fileSystem[path] = &file{contents: content}
}

func (this *InMemoryFileSystem) Closed(path string) bool {
	target, found := this.fileSystem[path]
	return found && target.closed
}

/////////////////////////////////////////////////

type file struct {
	contents []byte
	closed   bool
}

func (this *file) Write(p []byte) (n int, err error) {
	this.contents = append(this.contents, p...)
	return len(p), nil
}

func (this *file) Close() error {
	this.closed = true
	return nil
}
