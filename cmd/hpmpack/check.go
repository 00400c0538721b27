package main

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"

	"github.com/smarty/hpmpack/contracts"
	"github.com/smarty/hpmpack/core"
	"github.com/smarty/hpmpack/shell"
)

type CheckApp struct {
	config contracts.Config
	stdout io.Writer
}

func NewCheckApp(config contracts.Config, stdout io.Writer) *CheckApp {
	return &CheckApp{config: config, stdout: stdout}
}

func (this *CheckApp) Run() error {
	documents, err := loadDocuments(this.config)
	if err != nil {
		return err
	}

	file, err := os.Open(this.config.ArchivePath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	info, err := file.Stat()
	if err != nil {
		return err
	}

	archive, err := shell.NewArchiveReader(this.config.Format, file, info.Size())
	if err != nil {
		return err
	}
	defer func() { _ = archive.Close() }()

	err = core.NewArchiveChecker(md5.New).Verify(archive, documents)
	if err != nil {
		return fmt.Errorf("%s: %w", this.config.ArchivePath, err)
	}
	_, _ = fmt.Fprintf(this.stdout, "Verified %d manifests in %s.\n", len(documents), this.config.ArchivePath)
	return nil
}
