package core

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"time"

	"github.com/smarty/hpmpack/contracts"
)

// EntryModTime is stamped on every archive entry so repeated builds are byte-identical.
var EntryModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type ArchiveBuilder struct {
	archive  contracts.ArchiveWriter
	hasher   hash.Hash
	stdout   io.Writer
	contents []contracts.ArchiveItem
}

func NewArchiveBuilder(archive contracts.ArchiveWriter, hasher hash.Hash, stdout io.Writer) *ArchiveBuilder {
	return &ArchiveBuilder{
		archive: archive,
		hasher:  hasher,
		stdout:  stdout,
	}
}

// Build writes one entry per document, in order, and closes the archive.
func (this *ArchiveBuilder) Build(documents []contracts.Document) error {
	err := ValidateDocuments(documents)
	if err != nil {
		return err
	}
	for _, document := range documents {
		err = this.add(document)
		if err != nil {
			return err
		}
	}
	return this.archive.Close()
}

func (this *ArchiveBuilder) add(document contracts.Document) error {
	content, err := Serialize(document.Record)
	if err != nil {
		return fmt.Errorf("serialize %q: %w", document.Path, err)
	}
	err = this.archive.WriteHeader(contracts.ArchiveHeader{
		Name:    document.Path,
		Size:    int64(len(content)),
		ModTime: EntryModTime,
	})
	if err != nil {
		return fmt.Errorf("add %q: %w", document.Path, err)
	}
	defer this.hasher.Reset()
	_, err = io.MultiWriter(this.archive, this.hasher).Write(content)
	if err != nil {
		return fmt.Errorf("write %q: %w", document.Path, err)
	}
	this.contents = append(this.contents, contracts.ArchiveItem{
		Path:        document.Path,
		Size:        int64(len(content)),
		MD5Checksum: this.hasher.Sum(nil),
	})
	_, _ = fmt.Fprintf(this.stdout, "  - Added: %s\n", document.Path)
	return nil
}

func (this *ArchiveBuilder) Contents() []contracts.ArchiveItem {
	return this.contents
}

// ValidateDocuments rejects blank and repeated paths before anything is written.
func ValidateDocuments(documents []contracts.Document) error {
	inventory := make(map[string]struct{}, len(documents))
	for _, document := range documents {
		if document.Path == "" {
			return ErrBlankPath
		}
		if _, found := inventory[document.Path]; found {
			return fmt.Errorf("%w: %q", ErrDuplicatePath, document.Path)
		}
		inventory[document.Path] = struct{}{}
	}
	return nil
}

var (
	ErrBlankPath     = errors.New("document path should not be blank")
	ErrDuplicatePath = errors.New("document path appears more than once")
)
