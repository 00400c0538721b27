package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/smarty/hpmpack/contracts"
)

// DefaultLevel selects each format's own default compression level.
const DefaultLevel = -1

// NewArchiveWriterFactory returns a constructor for archive writers of the given format.
func NewArchiveWriterFactory(format contracts.ArchiveFormat, level int) (func(io.Writer) (contracts.ArchiveWriter, error), error) {
	switch format {
	case contracts.FormatZip:
		if level == DefaultLevel {
			level = flate.DefaultCompression
		}
		return func(target io.Writer) (contracts.ArchiveWriter, error) {
			return NewZipArchiveWriter(target, level), nil
		}, nil
	case contracts.FormatTarGz:
		if level == DefaultLevel {
			level = gzip.DefaultCompression
		}
		return func(target io.Writer) (contracts.ArchiveWriter, error) {
			compressor, err := gzip.NewWriterLevel(target, level)
			if err != nil {
				return nil, err
			}
			return NewTarArchiveWriter(compressor), nil
		}, nil
	case contracts.FormatTarZst:
		encoderLevel := zstd.SpeedDefault
		if level != DefaultLevel {
			encoderLevel = zstd.EncoderLevelFromZstd(level)
		}
		return func(target io.Writer) (contracts.ArchiveWriter, error) {
			compressor, err := zstd.NewWriter(target,
				zstd.WithEncoderLevel(encoderLevel),
				zstd.WithEncoderConcurrency(1),
			)
			if err != nil {
				return nil, err
			}
			return NewTarArchiveWriter(compressor), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", contracts.ErrUnsupportedFormat, format)
	}
}

// NewArchiveReader opens the entries of an archive held in source.
func NewArchiveReader(format contracts.ArchiveFormat, source io.ReaderAt, size int64) (contracts.ArchiveReader, error) {
	stream := io.NewSectionReader(source, 0, size)
	switch format {
	case contracts.FormatZip:
		return NewZipArchiveReader(source, size)
	case contracts.FormatTarGz:
		decompressor, err := gzip.NewReader(stream)
		if err != nil {
			return nil, err
		}
		return NewTarArchiveReader(decompressor), nil
	case contracts.FormatTarZst:
		decompressor, err := zstd.NewReader(stream, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return NewTarArchiveReader(decompressor.IOReadCloser()), nil
	default:
		return nil, fmt.Errorf("%w: %q", contracts.ErrUnsupportedFormat, format)
	}
}

var errNoCurrentEntry = errors.New("no current archive entry (call WriteHeader or Next first)")
