package shell

import (
	"archive/tar"
	"io"

	"github.com/smarty/hpmpack/contracts"
)

// TarArchiveWriter writes a tar stream through a compressor; closing it closes both.
type TarArchiveWriter struct {
	*tar.Writer
	compressor io.WriteCloser
}

func NewTarArchiveWriter(compressor io.WriteCloser) *TarArchiveWriter {
	return &TarArchiveWriter{Writer: tar.NewWriter(compressor), compressor: compressor}
}

func (this *TarArchiveWriter) WriteHeader(header contracts.ArchiveHeader) error {
	return this.Writer.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     header.Name,
		Size:     header.Size,
		ModTime:  header.ModTime,
		Mode:     0644,
	})
}

func (this *TarArchiveWriter) Close() error {
	err := this.Writer.Close()
	if err != nil {
		_ = this.compressor.Close()
		return err
	}
	return this.compressor.Close()
}
