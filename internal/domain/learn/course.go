package learn

import "time"

type Course struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex"`
	Title       string
	Description string

	IsFree        bool
	RequiredLevel string // membership tier name; ignored when IsFree
	Published     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
