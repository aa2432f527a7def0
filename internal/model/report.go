package model

import "time"

// FileEstimate holds site counts for one source file. DeleteSites leaves
// out call heads, which can never be deleted.
type FileEstimate struct {
	Source      Source
	Statements  int
	FlipSites   int
	DeleteSites int
	Err         error
}

// Total returns the number of sites that can yield a mutant.
func (e FileEstimate) Total() int {
	return e.FlipSites + e.DeleteSites
}

// FileReport summarises the mutants generated for one source file.
type FileReport struct {
	Source    Source
	Generated int
	Kept      int
	Discarded int
	Err       error
}

// ManifestEntry describes one mutant file written to the output directory.
type ManifestEntry struct {
	ID          uint   `yaml:"id"`
	Source      string `yaml:"source"`
	Output      string `yaml:"output"`
	Statement   int    `yaml:"statement"`
	Operator    string `yaml:"operator"`
	Path        string `yaml:"path"`
	Span        Span   `yaml:"span"`
	Description string `yaml:"description"`
	Outcome     string `yaml:"outcome"`
}

// Manifest is the index of a mutation run.
type Manifest struct {
	RunID     string          `yaml:"run_id"`
	CreatedAt time.Time       `yaml:"created_at"`
	Shard     string          `yaml:"shard,omitempty"`
	Mutants   []ManifestEntry `yaml:"mutants"`
}
