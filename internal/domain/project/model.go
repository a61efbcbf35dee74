package project

import "time"

// Project represents a project as returned by the backend, including the
// server-computed completion fields.
type Project struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	TotalTasks         int       `json:"totalTasks"`
	CompletedTasks     int       `json:"completedTasks"`
	ProgressPercentage int       `json:"progressPercentage"`
}

// Request defines project creation and update inputs.
type Request struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks the form constraints before the request leaves the client.
func (r Request) Validate() error {
	if isBlank(r.Title) {
		return ErrTitleRequired
	}
	if isBlank(r.Description) {
		return ErrDescriptionRequired
	}
	return nil
}
