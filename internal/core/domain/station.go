package domain

// Station has no validation on name: empty and duplicate names are accepted.
// IDs are sequential, max existing + 1.
type Station struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
