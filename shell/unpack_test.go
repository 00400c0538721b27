package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smarty/assertions/should"
	"github.com/smarty/gunit"
	"github.com/smartystreets/logging"

	"github.com/smarty/hpmpack/contracts"
)

func TestUnpackerFixture(t *testing.T) {
	gunit.Run(new(UnpackerFixture), t)
}

type UnpackerFixture struct {
	*gunit.Fixture
	root     string
	unpacker *Unpacker
}

func (this *UnpackerFixture) Setup() {
	var err error
	this.root, err = os.MkdirTemp("", "hpmpack-unpack-")
	this.So(err, should.BeNil)
	this.unpacker = NewUnpacker()
	this.unpacker.logger = logging.Capture()
}

func (this *UnpackerFixture) Teardown() {
	_ = os.RemoveAll(this.root)
}

func (this *UnpackerFixture) writeArchive(format contracts.ArchiveFormat) string {
	path := filepath.Join(this.root, format.Filename("manifests_fixed"))
	file, err := os.Create(path)
	this.So(err, should.BeNil)
	factory, err := NewArchiveWriterFactory(format, DefaultLevel)
	this.So(err, should.BeNil)
	writer, err := factory(file)
	this.So(err, should.BeNil)
	content := []byte("{\n  \"packageName\": \"A\"\n}")
	this.So(writer.WriteHeader(contracts.ArchiveHeader{Name: "A/packageManifest.json", Size: int64(len(content)), ModTime: modTime}), should.BeNil)
	_, err = writer.Write(content)
	this.So(err, should.BeNil)
	this.So(writer.Close(), should.BeNil)
	this.So(file.Close(), should.BeNil)
	return path
}

func (this *UnpackerFixture) assertExtracted(destination string) {
	raw, err := os.ReadFile(filepath.Join(destination, "A", "packageManifest.json"))
	this.So(err, should.BeNil)
	this.So(string(raw), should.Equal, "{\n  \"packageName\": \"A\"\n}")
}

func (this *UnpackerFixture) TestZipExtraction() {
	destination := filepath.Join(this.root, "project")

	err := this.unpacker.Unarchive(this.writeArchive(contracts.FormatZip), destination)

	this.So(err, should.BeNil)
	this.assertExtracted(destination)
	this.So(this.unpacker.logger.Log.String(), should.ContainSubstring, "[INFO] extracting")
}

func (this *UnpackerFixture) TestTarGzExtractionReplacesExistingManifest() {
	destination := filepath.Join(this.root, "project")
	this.So(os.MkdirAll(filepath.Join(destination, "A"), 0755), should.BeNil)
	this.So(os.WriteFile(filepath.Join(destination, "A", "packageManifest.json"), []byte("stale"), 0644), should.BeNil)

	err := this.unpacker.Unarchive(this.writeArchive(contracts.FormatTarGz), destination)

	this.So(err, should.BeNil)
	this.assertExtracted(destination)
}

func (this *UnpackerFixture) TestZstdExtractionUnsupported() {
	err := this.unpacker.Unarchive(this.writeArchive(contracts.FormatTarZst), this.root)

	this.So(err, should.Wrap, contracts.ErrUnsupportedFormat)
}

func (this *UnpackerFixture) TestUnknownExtension() {
	err := this.unpacker.Unarchive(filepath.Join(this.root, "manifests.7z"), this.root)

	this.So(err, should.Equal, contracts.ErrUnsupportedFormat)
}
