package core

import (
	"bytes"
	"flag"
	"testing"

	"github.com/smarty/assertions/should"
	"github.com/smarty/gunit"

	"github.com/smarty/hpmpack/contracts"
)

func TestConfigLoaderFixture(t *testing.T) {
	gunit.Run(new(ConfigLoaderFixture), t)
}

type ConfigLoaderFixture struct {
	*gunit.Fixture
	stderr *bytes.Buffer
	loader *ConfigLoader
}

func (this *ConfigLoaderFixture) Setup() {
	this.stderr = new(bytes.Buffer)
	this.loader = NewConfigLoader(this.stderr)
}

func (this *ConfigLoaderFixture) TestBuildDefaults() {
	config, err := this.loader.LoadConfig("build", nil)

	this.So(err, should.BeNil)
	this.So(config, should.Resemble, contracts.Config{
		Command:     "build",
		ArchivePath: "manifests_fixed.zip",
		Format:      contracts.FormatZip,
		Level:       -1,
		Destination: ".",
	})
}

func (this *ConfigLoaderFixture) TestBuildFormatSetsDefaultFilename() {
	config, err := this.loader.LoadConfig("build", []string{"-format", "tar.zst", "-level", "19"})

	this.So(err, should.BeNil)
	this.So(config.Format, should.Equal, contracts.FormatTarZst)
	this.So(config.ArchivePath, should.Equal, "manifests_fixed.tar.zst")
	this.So(config.Level, should.Equal, 19)
}

func (this *ConfigLoaderFixture) TestBuildFormatInferredFromOutput() {
	config, err := this.loader.LoadConfig("build", []string{"-output", "dist/hpm.tar.gz", "-catalog", "catalog.yaml", "-quiet"})

	this.So(err, should.BeNil)
	this.So(config.Format, should.Equal, contracts.FormatTarGz)
	this.So(config.ArchivePath, should.Equal, "dist/hpm.tar.gz")
	this.So(config.CatalogPath, should.Equal, "catalog.yaml")
	this.So(config.Quiet, should.BeTrue)
}

func (this *ConfigLoaderFixture) TestExplicitFormatWinsOverOutputExtension() {
	config, err := this.loader.LoadConfig("build", []string{"-output", "bundle.tar.gz", "-format", "zip"})

	this.So(err, should.BeNil)
	this.So(config.Format, should.Equal, contracts.FormatZip)
	this.So(config.ArchivePath, should.Equal, "bundle.tar.gz")
}

func (this *ConfigLoaderFixture) TestUnsupportedFormat() {
	_, err := this.loader.LoadConfig("build", []string{"-format", "rar"})

	this.So(err, should.Equal, contracts.ErrUnsupportedFormat)
}

func (this *ConfigLoaderFixture) TestCompressionLevelBounds() {
	_, err := this.loader.LoadConfig("build", []string{"-level", "12"})
	this.So(err, should.Equal, ErrCompressionLevel)

	_, err = this.loader.LoadConfig("build", []string{"-format", "tar.zst", "-level", "0"})
	this.So(err, should.Equal, ErrCompressionLevel)

	_, err = this.loader.LoadConfig("build", []string{"-level", "0"})
	this.So(err, should.BeNil)
}

func (this *ConfigLoaderFixture) TestCheckDefaults() {
	config, err := this.loader.LoadConfig("check", nil)

	this.So(err, should.BeNil)
	this.So(config.ArchivePath, should.Equal, "manifests_fixed.zip")
	this.So(config.Format, should.Equal, contracts.FormatZip)
}

func (this *ConfigLoaderFixture) TestCheckArchiveWithUnknownExtension() {
	_, err := this.loader.LoadConfig("check", []string{"-archive", "manifests.7z"})

	this.So(err, should.Equal, contracts.ErrUnsupportedFormat)
}

func (this *ConfigLoaderFixture) TestUnpack() {
	config, err := this.loader.LoadConfig("unpack", []string{"-archive", "out/m.tar.gz", "-destination", "/srv/project"})

	this.So(err, should.BeNil)
	this.So(config.Format, should.Equal, contracts.FormatTarGz)
	this.So(config.Destination, should.Equal, "/srv/project")
}

func (this *ConfigLoaderFixture) TestUnknownFlag() {
	_, err := this.loader.LoadConfig("unpack", []string{"-catalog", "x.yaml"})

	this.So(err, should.NotBeNil)
	this.So(this.stderr.String(), should.ContainSubstring, "Usage of hpmpack unpack:")
}

func (this *ConfigLoaderFixture) TestHelp() {
	_, err := this.loader.LoadConfig("build", []string{"-h"})

	this.So(err, should.Equal, flag.ErrHelp)
}

func (this *ConfigLoaderFixture) TestPositionalArguments() {
	_, err := this.loader.LoadConfig("build", []string{"extra"})

	this.So(err, should.Wrap, ErrUnexpectedArguments)
}

func (this *ConfigLoaderFixture) TestUnknownCommand() {
	_, err := this.loader.LoadConfig("upload", nil)

	this.So(err, should.Wrap, ErrUnknownCommand)
}
