package main

import (
	"fmt"
	"io"

	"github.com/smarty/hpmpack/contracts"
	"github.com/smarty/hpmpack/shell"
)

type UnpackApp struct {
	config     contracts.Config
	stdout     io.Writer
	unarchiver contracts.Unarchiver
}

func NewUnpackApp(config contracts.Config, stdout io.Writer) *UnpackApp {
	return &UnpackApp{config: config, stdout: stdout, unarchiver: shell.NewUnpacker()}
}

func (this *UnpackApp) Run() error {
	err := this.unarchiver.Unarchive(this.config.ArchivePath, this.config.Destination)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(this.stdout, "Unpacked '%s' into %s.\n", this.config.ArchivePath, this.config.Destination)
	return nil
}
