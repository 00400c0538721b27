package contracts

import (
	"errors"
	"strings"
)

type ArchiveFormat string

const (
	FormatZip    ArchiveFormat = "zip"
	FormatTarGz  ArchiveFormat = "tar.gz"
	FormatTarZst ArchiveFormat = "tar.zst"
)

var Formats = []ArchiveFormat{FormatZip, FormatTarGz, FormatTarZst}

func ParseArchiveFormat(value string) (ArchiveFormat, error) {
	for _, format := range Formats {
		if strings.EqualFold(value, string(format)) {
			return format, nil
		}
	}
	return "", ErrUnsupportedFormat
}

// FormatFromFilename reports the format implied by a file's extension.
func FormatFromFilename(path string) (ArchiveFormat, error) {
	lower := strings.ToLower(path)
	for _, format := range Formats {
		if strings.HasSuffix(lower, "."+string(format)) {
			return format, nil
		}
	}
	return "", ErrUnsupportedFormat
}

func (this ArchiveFormat) Filename(base string) string {
	return base + "." + string(this)
}

var ErrUnsupportedFormat = errors.New("unsupported archive format (expected one of: zip, tar.gz, tar.zst)")
