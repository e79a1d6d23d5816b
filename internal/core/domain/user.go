package domain

// User is never created through this service, users are managed externally
// and only referenced by comments.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
