package main

import (
	"io"

	"github.com/smarty/hpmpack/contracts"
	"github.com/smarty/hpmpack/core"
	"github.com/smarty/hpmpack/shell"
)

type BuildApp struct {
	config contracts.Config
	stdout io.Writer
	files  contracts.FileCreator
}

func NewBuildApp(config contracts.Config, stdout io.Writer) *BuildApp {
	if config.Quiet {
		stdout = io.Discard
	}
	return &BuildApp{config: config, stdout: stdout, files: shell.NewDiskFileSystem(".")}
}

func (this *BuildApp) Run() error {
	documents, err := loadDocuments(this.config)
	if err != nil {
		return err
	}
	factory, err := shell.NewArchiveWriterFactory(this.config.Format, this.config.Level)
	if err != nil {
		return err
	}
	_, err = core.NewPackager(this.files, factory, this.stdout).Package(this.config.ArchivePath, documents)
	return err
}
