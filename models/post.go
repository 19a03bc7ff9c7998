package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrEventWindow     = errors.New("event end must be after event start")
)

// Post represents a newsroom article document.
// Collection: posts
//
// EventDate marks the post as an event; posts without one are plain
// articles and never enter digest selection. Hidden is a soft delete:
// the document stays in the collection but is excluded from every
// user-facing listing.
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	Title        string             `bson:"title" json:"title"`
	Content      string             `bson:"content" json:"content"`
	Categories   []string           `bson:"categories" json:"categories"`
	EventDate    *time.Time         `bson:"event_date,omitempty" json:"event_date,omitempty"`
	EventEndDate *time.Time         `bson:"event_end_date,omitempty" json:"event_end_date,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Hidden       bool               `bson:"hidden" json:"hidden"`
}

// IsEvent reports whether the post has a scheduled start time.
func (p *Post) IsEvent() bool {
	return p.EventDate != nil
}

// Validate checks the fields an admin fills in on the create/edit screens.
// Downstream consumers do not re-validate; malformed documents from the
// store are filtered defensively instead.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrContentRequired
	}
	if p.EventDate != nil && p.EventEndDate != nil && !p.EventEndDate.After(*p.EventDate) {
		return ErrEventWindow
	}
	return nil
}
