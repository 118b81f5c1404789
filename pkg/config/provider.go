// Package config defines the service configuration and its data sources.
// Two backends are supported: YAML files and SQLite databases.
package config

// Provider defines the interface for configuration data sources
type Provider interface {
	// LoadConfig loads the complete configuration
	LoadConfig() (*Config, error)

	// IsReadOnly reports whether the backend can be written through
	IsReadOnly() bool

	Close() error
}

// Config is the complete service configuration.
type Config struct {
	HTTP           HTTPConfig      `yaml:"http" json:"http"`
	Catalog        CatalogConfig   `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Psychrometrics PsychroConfig   `yaml:"psychrometrics,omitempty" json:"psychrometrics,omitempty"`
	Generator      GeneratorConfig `yaml:"generator,omitempty" json:"generator,omitempty"`
}

// HTTPConfig holds the REST server settings.
type HTTPConfig struct {
	ListenAddr  string `yaml:"listen_addr,omitempty" json:"listen_addr,omitempty"`
	Port        int    `yaml:"port,omitempty" json:"port,omitempty"`
	TLSCertPath string `yaml:"tls_cert_path,omitempty" json:"tls_cert_path,omitempty"`
	TLSKeyPath  string `yaml:"tls_key_path,omitempty" json:"tls_key_path,omitempty"`
}

// CatalogConfig selects the material catalog source: "embedded" (default),
// "yaml" or "sqlite", with Path pointing at the file for the latter two.
type CatalogConfig struct {
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
}

// PsychroConfig holds the moist-air model settings. Zero values select the
// standard pressure and the default saturation search bracket.
type PsychroConfig struct {
	Pressure     float64 `yaml:"pressure,omitempty" json:"pressure,omitempty"`            // Pa
	SatSearchMin float64 `yaml:"sat_search_min,omitempty" json:"sat_search_min,omitempty"` // °C
	SatSearchMax float64 `yaml:"sat_search_max,omitempty" json:"sat_search_max,omitempty"` // °C
	SpecificHeat float64 `yaml:"specific_heat,omitempty" json:"specific_heat,omitempty"`   // kJ/kg·K
}

// GeneratorConfig holds question-generation settings. A zero Seed selects
// a time-based seed.
type GeneratorConfig struct {
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}
