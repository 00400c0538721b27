package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/smarty/hpmpack/catalog"
	"github.com/smarty/hpmpack/contracts"
	"github.com/smarty/hpmpack/core"
	"github.com/smarty/hpmpack/shell"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	name, args := subCommand(os.Args[1:])
	if name == "version" {
		fmt.Printf("hpmpack [%s]\n", ldflagsSoftwareVersion)
		return
	}

	config, err := core.NewConfigLoader(os.Stderr).LoadConfig(name, args)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	err = run(config, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// subCommand treats a missing or flag-like first argument as an implicit "build".
func subCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "build", args
	}
	return args[0], args[1:]
}

func run(config contracts.Config, stdout io.Writer) error {
	switch config.Command {
	case "check":
		return NewCheckApp(config, stdout).Run()
	case "unpack":
		return NewUnpackApp(config, stdout).Run()
	default:
		return NewBuildApp(config, stdout).Run()
	}
}

func loadDocuments(config contracts.Config) ([]contracts.Document, error) {
	if config.CatalogPath == "" {
		return catalog.Hubitat(), nil
	}
	return catalog.NewLoader(shell.NewDiskFileSystem(".")).Load(config.CatalogPath)
}

var ldflagsSoftwareVersion = "debug"
