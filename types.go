package scribe

import "time"

// Post is the core content type stored through GORM and rendered by templates.
// ID 0 is never a stored identifier; the edit flow reserves it to mean
// "create a new post".
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Slug      string `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	Tagline   string `gorm:"not null"`
	ImageFile string
	CreatedAt time.Time
}

// PostFields carries the mutable fields of a post as submitted by the edit
// form. Updates are full replacements: a field the form left blank overwrites
// the stored value with an empty string.
type PostFields struct {
	Title     string
	Slug      string
	Content   string
	Tagline   string
	ImageFile string
}

// ContactMessage is an append-only record of a contact form submission.
// The application never reads, updates, or deletes these rows.
type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Phone     string `gorm:"not null"`
	Message   string `gorm:"type:text;not null"`
	Email     string
	CreatedAt time.Time
}
