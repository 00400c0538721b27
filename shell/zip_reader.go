package shell

import (
	"io"

	"github.com/klauspost/compress/zip"

	"github.com/smarty/hpmpack/contracts"
)

type ZipArchiveReader struct {
	zipReader        *zip.Reader
	current          io.ReadCloser
	currentFileCount int
}

func NewZipArchiveReader(source io.ReaderAt, size int64) (*ZipArchiveReader, error) {
	reader, err := zip.NewReader(source, size)
	if err != nil {
		return nil, err
	}
	return &ZipArchiveReader{zipReader: reader}, nil
}

func (this *ZipArchiveReader) Next() (contracts.ArchiveHeader, error) {
	err := this.closeCurrent()
	if err != nil {
		return contracts.ArchiveHeader{}, err
	}
	if this.currentFileCount >= len(this.zipReader.File) {
		return contracts.ArchiveHeader{}, io.EOF
	}

	zipHeader := this.zipReader.File[this.currentFileCount]
	this.currentFileCount++

	this.current, err = zipHeader.Open()
	if err != nil {
		return contracts.ArchiveHeader{}, err
	}
	return contracts.ArchiveHeader{
		Name:    zipHeader.Name,
		Size:    int64(zipHeader.UncompressedSize64),
		ModTime: zipHeader.Modified,
	}, nil
}

func (this *ZipArchiveReader) Read(p []byte) (int, error) {
	if this.current == nil {
		return 0, errNoCurrentEntry
	}
	return this.current.Read(p)
}

func (this *ZipArchiveReader) Close() error {
	return this.closeCurrent()
}

func (this *ZipArchiveReader) closeCurrent() error {
	if this.current == nil {
		return nil
	}
	err := this.current.Close()
	this.current = nil
	return err
}
