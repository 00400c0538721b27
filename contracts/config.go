package contracts

const (
	DefaultArchiveBaseName = "manifests_fixed"
	DefaultDestination     = "."
)

type Config struct {
	Command     string
	ArchivePath string
	Format      ArchiveFormat
	Level       int
	CatalogPath string
	Destination string
	Quiet       bool
}
