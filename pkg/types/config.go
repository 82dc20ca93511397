package types

// ParserConfig holds settings for the extraction engine.
type ParserConfig struct {
	// CustomEnvironments lists extra environment names to recognize in
	// addition to the built-in kinds and their variants.
	CustomEnvironments []string `json:"custom_environments,omitempty" yaml:"custom_environments,omitempty"`

	// AutoDetect controls whether \newtheorem declarations in the
	// document register their environment names before extraction
	// (default true).
	AutoDetect bool `json:"auto_detect" yaml:"auto_detect"`
}

// CatalogConfig holds settings for the statement catalog.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Parser  ParserConfig  `json:"parser" yaml:"parser"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
