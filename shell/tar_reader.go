package shell

import (
	"archive/tar"
	"fmt"
	"io"

	"github.com/smarty/hpmpack/contracts"
)

type TarArchiveReader struct {
	*tar.Reader
	decompressor io.ReadCloser
}

func NewTarArchiveReader(decompressor io.ReadCloser) *TarArchiveReader {
	return &TarArchiveReader{Reader: tar.NewReader(decompressor), decompressor: decompressor}
}

func (this *TarArchiveReader) Next() (contracts.ArchiveHeader, error) {
	header, err := this.Reader.Next()
	if err != nil {
		return contracts.ArchiveHeader{}, err
	}
	if header.Typeflag != tar.TypeReg {
		return contracts.ArchiveHeader{}, fmt.Errorf("%w: %q", contracts.ErrIrregularEntry, header.Name)
	}
	return contracts.ArchiveHeader{
		Name:    header.Name,
		Size:    header.Size,
		ModTime: header.ModTime,
	}, nil
}

func (this *TarArchiveReader) Close() error {
	return this.decompressor.Close()
}
