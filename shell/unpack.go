package shell

import (
	"fmt"

	"github.com/mholt/archiver"
	"github.com/smartystreets/logging"

	"github.com/smarty/hpmpack/contracts"
)

// Unpacker extracts a built archive into a project root, replacing manifests already there.
type Unpacker struct {
	logger *logging.Logger
}

func NewUnpacker() *Unpacker {
	return &Unpacker{}
}

func (this *Unpacker) Unarchive(source, destination string) error {
	format, err := contracts.FormatFromFilename(source)
	if err != nil {
		return err
	}
	unarchiver, err := this.unarchiver(format)
	if err != nil {
		return err
	}
	this.logger.Printf("[INFO] extracting %s into %s", source, destination)
	return unarchiver.Unarchive(source, destination)
}

func (this *Unpacker) unarchiver(format contracts.ArchiveFormat) (archiver.Unarchiver, error) {
	switch format {
	case contracts.FormatZip:
		return &archiver.Zip{OverwriteExisting: true, MkdirAll: true}, nil
	case contracts.FormatTarGz:
		return &archiver.TarGz{Tar: &archiver.Tar{OverwriteExisting: true, MkdirAll: true}}, nil
	default:
		return nil, fmt.Errorf("%w: %s archives cannot be extracted", contracts.ErrUnsupportedFormat, format)
	}
}
