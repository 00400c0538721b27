package contracts

// PackageManifest is the packageManifest.json document consumed by the Hubitat Package Manager.
// Field order is the order of keys on output.
type PackageManifest struct {
	PackageName       string   `json:"packageName" yaml:"packageName"`
	Author            string   `json:"author" yaml:"author"`
	Version           string   `json:"version" yaml:"version"`
	MinimumHEVersion  string   `json:"minimumHEVersion" yaml:"minimumHEVersion"`
	DateReleased      string   `json:"dateReleased" yaml:"dateReleased"`
	DocumentationLink string   `json:"documentationLink" yaml:"documentationLink"`
	LicenseFile       string   `json:"licenseFile" yaml:"licenseFile"`
	PayPalURL         string   `json:"payPalUrl" yaml:"payPalUrl"`
	ReleaseNotes      string   `json:"releaseNotes" yaml:"releaseNotes"`
	Description       string   `json:"description,omitempty" yaml:"description,omitempty"`
	Drivers           []Driver `json:"drivers" yaml:"drivers"`
}

type Driver struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Location  string `json:"location" yaml:"location"`
	Required  bool   `json:"required" yaml:"required"`
}

// Document pairs an archive-relative path with the record serialized at that path.
// Struct records keep their field declaration order on output; map records are written
// with keys sorted, so callers needing a particular key order should use a struct.
type Document struct {
	Path   string
	Record interface{}
}
