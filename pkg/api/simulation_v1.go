// pkg/api/simulation_v1.go
package api

// SimulationV1 is the stable JSON/JSONL schema for one ms simulation summary.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SimulationV1 struct {
	SourceFile      string    `json:"source_file,omitempty"`
	Index           int       `json:"index"`
	Segsites        int       `json:"segsites"`
	Samples         int       `json:"samples"`
	PopulationSizes []int     `json:"population_sizes"`
	Positions       []float64 `json:"positions,omitempty"`
	BasePositions   []int     `json:"base_positions,omitempty"`
	LocusLength     int       `json:"locus_length,omitempty"`
}

// SequenceV1 is the stable JSON/JSONL schema for a FASTA record.
type SequenceV1 struct {
	ID      string `json:"id"`
	Comment string `json:"comment,omitempty"`
	Length  int    `json:"length"`
	Seq     string `json:"seq,omitempty"`
}
