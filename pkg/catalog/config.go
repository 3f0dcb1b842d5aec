package catalog

// Config represents the configuration for the permission catalog.
type Config struct {
	Path string `env:"PERMISSION_CATALOG_PATH"` // Path to the YAML catalog file. Empty selects the built-in default catalog.
}
