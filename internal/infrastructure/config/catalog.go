package config

// CatalogConfig locates the static catalog data
type CatalogConfig struct {
	// ArchivePath is the zip archive holding blueprint, reaction, schematic
	// and refine records. Empty disables catalog lookups.
	ArchivePath string `mapstructure:"archive_path"`
}
