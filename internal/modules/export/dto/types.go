package dto

type ExportInput struct {
	Title    string
	Markdown string
	Format   string
}

type ExportOutput struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Exporter string `json:"exporter"`
}

type ExporterOutput struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Enabled bool     `json:"enabled"`
	Binary  string   `json:"binary,omitempty"`
	Formats []string `json:"formats"`
}

type DoctorEntryOutput struct {
	Name            string `json:"name"`
	BinaryReachable bool   `json:"binary_reachable"`
	ChecksumValid   bool   `json:"checksum_valid"`
	LifecycleOK     bool   `json:"lifecycle_ok"`
	Error           string `json:"error,omitempty"`
}
