package manifest

// IndexFile is the inventory the front end reads to populate its selectors.
const IndexFile = "index.json"

// IndexEntry describes one emitted dataset. It carries no timestamps so that
// rebuilding from the same inputs leaves index.json byte-identical.
type IndexEntry struct {
	Lang        string  `json:"lang" yaml:"lang"`
	Language    string  `json:"language" yaml:"language"`
	Register    string  `json:"register" yaml:"register"`
	Model       string  `json:"model" yaml:"model"`
	File        string  `json:"file" yaml:"file"`
	Records     int     `json:"records" yaml:"records"`
	Window      int     `json:"window" yaml:"window"`
	AITokens    float64 `json:"ai_tokens" yaml:"ai_tokens"`
	HumanTokens float64 `json:"human_tokens" yaml:"human_tokens"`
	Pairs       int     `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	RowsRead    int     `json:"rows_read" yaml:"rows_read"`
	RowsDropped int     `json:"rows_dropped" yaml:"rows_dropped"`

	// Parameters behind records and lpr/ratio_smoothed.
	Mode        string  `json:"mode" yaml:"mode"`
	MinAICount  float64 `json:"min_ai_count_for_impact" yaml:"min_ai_count_for_impact"`
	RatioSmooth float64 `json:"ratio_smooth" yaml:"ratio_smooth"`
}
