package core

import (
	"crypto/md5"
	"fmt"
	"io"
	"path/filepath"

	"github.com/smartystreets/logging"

	"github.com/smarty/hpmpack/contracts"
)

// ArchiveWriterFactory wraps a destination stream in an archive writer of a particular format.
type ArchiveWriterFactory func(target io.Writer) (contracts.ArchiveWriter, error)

// Packager produces the archive file at a path from an ordered list of documents,
// replacing any file already there.
type Packager struct {
	files   contracts.FileCreator
	factory ArchiveWriterFactory
	stdout  io.Writer
	logger  *logging.Logger
}

func NewPackager(files contracts.FileCreator, factory ArchiveWriterFactory, stdout io.Writer) *Packager {
	return &Packager{files: files, factory: factory, stdout: stdout}
}

func (this *Packager) Package(outputPath string, documents []contracts.Document) ([]contracts.ArchiveItem, error) {
	err := ValidateDocuments(documents)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(outputPath)
	_, _ = fmt.Fprintf(this.stdout, "Generating %s...\n", name)

	file, err := this.files.Create(outputPath)
	if err != nil {
		return nil, err
	}
	counter := new(byteCounter)
	archive, err := this.factory(io.MultiWriter(file, counter))
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	builder := NewArchiveBuilder(archive, md5.New(), this.stdout)
	err = builder.Build(documents)
	if err != nil {
		this.logger.Printf("[WARN] building %s failed; the file may be incomplete.", outputPath)
		_ = archive.Close()
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil {
		return nil, err
	}

	this.logger.Printf("[INFO] wrote %d entries (%s) to %s", len(documents), counter, outputPath)
	_, _ = fmt.Fprintf(this.stdout, "\nDone! Unpack '%s' into your project root.\n", name)
	return builder.Contents(), nil
}
