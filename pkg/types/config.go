// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PipelineConfig holds the runtime settings for a conversion run. It is
// populated from flags, environment, and the optional config file, and
// passed by value to the pipeline.
type PipelineConfig struct {
	// Workers is the number of concurrent file conversions per job.
	// Zero or negative means one worker per available CPU.
	Workers int `json:"workers" yaml:"workers"`

	// ReportPath, when non-empty, is where the YAML run report is written
	// after both jobs finish.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// CatalogPath, when non-empty, is the SQLite database file that
	// records one row per processed file.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`
}
