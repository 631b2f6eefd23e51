package domain

import "time"

// User identifies the local owner of the analysis history. One user is
// created per installation and persisted; the pipeline only reads its
// ID and Name when stamping records.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
	TestMode  bool
}

// DisplayName returns the name used in prompts, falling back to a generic
// label when the stored name is empty.
func (u User) DisplayName() string {
	if u.Name == "" {
		return "User"
	}
	return u.Name
}
