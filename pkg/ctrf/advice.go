package ctrf

// Advice is user-facing guidance for a failed query.
type Advice struct {
	Message          string   `json:"message" groups:"basic"`
	Suggestions      []string `json:"suggestions" groups:"basic"`
	RetryRecommended bool     `json:"retry_recommended" groups:"basic"`
	HandledAt        string   `json:"handled_at" groups:"detailed"`
}
