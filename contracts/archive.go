package contracts

import (
	"errors"
	"io"
	"time"
)

type ArchiveHeader struct {
	Name    string
	Size    int64
	ModTime time.Time
}

type ArchiveWriter interface {
	io.WriteCloser
	WriteHeader(header ArchiveHeader) error
}

// ArchiveReader walks the entries of an archive. Next returns io.EOF after the last entry
// and ErrIrregularEntry for anything that is not a plain file; Read yields the content of
// the current entry.
type ArchiveReader interface {
	io.ReadCloser
	Next() (ArchiveHeader, error)
}

type ArchiveItem struct {
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	MD5Checksum []byte `json:"md5_checksum"`
}

type Unarchiver interface {
	Unarchive(source, destination string) error
}

var ErrIrregularEntry = errors.New("archive entry is not a regular file (links and directories are not allowed)")
