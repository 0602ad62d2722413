package sprint

import "time"

type Sprint struct {
	ID    uint   `gorm:"primaryKey"`
	Slug  string `gorm:"uniqueIndex"`
	Title string

	StartAt            time.Time
	EndAt              time.Time
	SubmissionDeadline time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the sprint is running at the supplied
// reference time. The bounds are inclusive on both ends.
func (s Sprint) IsActive(now time.Time) bool {
	return !now.Before(s.StartAt) && !now.After(s.EndAt)
}

// AcceptsSubmissions reports whether a submission at now would still
// make the deadline. Requires the sprint to be active.
func (s Sprint) AcceptsSubmissions(now time.Time) bool {
	return s.IsActive(now) && !now.After(s.SubmissionDeadline)
}

type Submission struct {
	ID       uint `gorm:"primaryKey"`
	SprintID uint `gorm:"index"`
	Sprint   Sprint
	UserID   uint `gorm:"index"`
	Body     string

	SubmittedAt time.Time
	CreatedAt   time.Time
}
