package core

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/smarty/hpmpack/contracts"
)

type ConfigLoader struct {
	stderr io.Writer
}

func NewConfigLoader(stderr io.Writer) *ConfigLoader {
	return &ConfigLoader{stderr: stderr}
}

func (this *ConfigLoader) LoadConfig(name string, args []string) (config contracts.Config, err error) {
	config, err = this.parseCLI(name, args)
	if err != nil {
		return contracts.Config{}, err
	}
	err = this.validate(config)
	if err != nil {
		return contracts.Config{}, err
	}
	return config, nil
}

func (this *ConfigLoader) parseCLI(name string, args []string) (config contracts.Config, err error) {
	config.Command = name
	config.Level = -1
	config.Destination = contracts.DefaultDestination
	format := string(contracts.FormatZip)

	flags := flag.NewFlagSet("hpmpack "+name, flag.ContinueOnError)
	flags.SetOutput(this.stderr)
	switch name {
	case "build":
		flags.StringVar(&config.ArchivePath,
			"output",
			"",
			"Path of the archive to write (replaced if present). Defaults to manifests_fixed.<format> in the working directory.",
		)
		flags.StringVar(&format,
			"format",
			format,
			"Archive format: zip, tar.gz or tar.zst. Inferred from -output when not given.",
		)
		flags.IntVar(&config.Level,
			"level",
			config.Level,
			"Compression level (-1 selects the format's default; zip and tar.gz accept 0-9, tar.zst 1-22).",
		)
		flags.BoolVar(&config.Quiet,
			"quiet",
			false,
			"When set, suppress per-entry progress lines.",
		)
	case "check", "unpack":
		flags.StringVar(&config.ArchivePath,
			"archive",
			contracts.FormatZip.Filename(contracts.DefaultArchiveBaseName),
			"Path of a previously built archive (format is taken from the extension).",
		)
	default:
		return contracts.Config{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if name == "unpack" {
		flags.StringVar(&config.Destination,
			"destination",
			config.Destination,
			"Directory (project root) to extract the manifests into.",
		)
	} else {
		flags.StringVar(&config.CatalogPath,
			"catalog",
			"",
			"Optional YAML or JSON catalog file listing path/manifest pairs (defaults to the built-in catalog).",
		)
	}
	flags.Usage = func() {
		_, _ = fmt.Fprintf(this.stderr, "Usage of hpmpack %s:\n", name)
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		return contracts.Config{}, err
	}
	if flags.NArg() > 0 {
		return contracts.Config{}, fmt.Errorf("%w: %v", ErrUnexpectedArguments, flags.Args())
	}

	config.Format, err = this.resolveFormat(config, format, explicitlySet(flags, "format"))
	if err != nil {
		return contracts.Config{}, err
	}
	if config.ArchivePath == "" {
		config.ArchivePath = config.Format.Filename(contracts.DefaultArchiveBaseName)
	}
	return config, nil
}

func (this *ConfigLoader) resolveFormat(config contracts.Config, format string, explicit bool) (contracts.ArchiveFormat, error) {
	if config.Command != "build" {
		return contracts.FormatFromFilename(config.ArchivePath)
	}
	if !explicit && config.ArchivePath != "" {
		if inferred, err := contracts.FormatFromFilename(config.ArchivePath); err == nil {
			return inferred, nil
		}
	}
	return contracts.ParseArchiveFormat(format)
}

func (this *ConfigLoader) validate(config contracts.Config) error {
	if config.Command != "build" || config.Level == -1 {
		return nil
	}
	if config.Format == contracts.FormatTarZst {
		if config.Level < 1 || config.Level > 22 {
			return ErrCompressionLevel
		}
		return nil
	}
	if config.Level < 0 || config.Level > 9 {
		return ErrCompressionLevel
	}
	return nil
}

func explicitlySet(flags *flag.FlagSet, name string) (found bool) {
	flags.Visit(func(item *flag.Flag) {
		if item.Name == name {
			found = true
		}
	})
	return found
}

var (
	ErrUnknownCommand      = errors.New("unknown sub-command (expected build, check, unpack or version)")
	ErrUnexpectedArguments = errors.New("unexpected positional arguments")
	ErrCompressionLevel    = errors.New("compression level out of range for the selected format")
)
