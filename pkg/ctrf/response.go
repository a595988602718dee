package ctrf

// Summary is the compact projection of a status for programmatic consumers.
type Summary struct {
	Train       string     `json:"train" groups:"basic"`
	Status      string     `json:"status" groups:"basic"`
	Delay       int        `json:"delay" groups:"basic"`
	Location    string     `json:"location" groups:"basic"`
	Reliability float64    `json:"reliability" groups:"basic"`
	DataSource  DataSource `json:"data_source" groups:"basic"`
}

type Response struct {
	Success bool   `json:"success" groups:"basic"`
	Message string `json:"message" groups:"basic"`

	Summary *Summary               `json:"summary,omitempty" groups:"basic"`
	Raw     *CanonicalStatusRecord `json:"raw,omitempty" groups:"detailed"`
}
