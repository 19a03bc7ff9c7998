package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserProfile represents a per-user preference document.
// Collection: users
//
// The _id is the identity provider's uid, so there is no separate lookup
// table between auth users and profiles. StarredPosts holds post ObjectID
// hex strings and may reference posts that were hidden or removed since;
// consumers drop dangling ids silently.
type UserProfile struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role" json:"role"`
	Categories   []string  `bson:"categories" json:"categories"`
	StarredPosts []string  `bson:"starred_posts" json:"starred_posts"`
	WeeklyTop5   bool      `bson:"weekly_top5" json:"weekly_top5"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// HasStarred reports whether the given post id is in the user's favorites.
func (u *UserProfile) HasStarred(postID string) bool {
	for _, id := range u.StarredPosts {
		if id == postID {
			return true
		}
	}
	return false
}
