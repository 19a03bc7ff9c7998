package feed

import (
	"sort"
	"time"

	"newsroom/models"
)

const (
	// DigestSize is how many posts a weekly email tries to carry.
	DigestSize = 5

	// maxStarredPicks caps the starred tier so category matches and
	// upcoming events still get slots.
	maxStarredPicks = 2
)

// SelectDigest picks at most DigestSize posts for one user's weekly email,
// in three tiers assembled in order:
//
//  1. starred events, event date descending, at most maxStarredPicks
//  2. events matching the user's preference categories, event date
//     descending, filling up to DigestSize
//  3. upcoming events (strictly after now), event date ascending, filling
//     any remaining slots
//
// Tiers 1-2 sort descending while tier 3 sorts ascending; the asymmetry
// is long-standing observed behavior and is kept as-is. Posts without an
// event date never qualify for any tier, hidden posts are excluded
// everywhere, and no post appears twice. Equal event dates fall back to
// id order so identical snapshots always produce identical emails.
func SelectDigest(user *models.UserProfile, posts []models.Post, now time.Time) []models.Post {
	byID := PostsByID(posts)
	selected := make(map[string]struct{}, DigestSize)
	out := make([]models.Post, 0, DigestSize)

	take := func(p models.Post) {
		selected[p.ID.Hex()] = struct{}{}
		out = append(out, p)
	}

	// Tier 1: starred events.
	starred := make([]models.Post, 0, len(user.StarredPosts))
	for _, id := range user.StarredPosts {
		p, ok := byID[id]
		if !ok || p.Hidden || !p.IsEvent() {
			continue
		}
		starred = append(starred, p)
	}
	sortByEventDateDesc(starred)
	for _, p := range starred {
		if len(out) >= maxStarredPicks {
			break
		}
		take(p)
	}

	// Tier 2: preference category matches.
	prefs := make(CategorySet, len(user.Categories))
	for _, c := range user.Categories {
		prefs[c] = struct{}{}
	}
	matches := make([]models.Post, 0)
	for _, p := range posts {
		if _, ok := selected[p.ID.Hex()]; ok {
			continue
		}
		if p.Hidden || !p.IsEvent() {
			continue
		}
		if !IsRelevant(&p, prefs) {
			continue
		}
		matches = append(matches, p)
	}
	sortByEventDateDesc(matches)
	for _, p := range matches {
		if len(out) >= DigestSize {
			break
		}
		take(p)
	}

	// Tier 3: soonest upcoming events fill whatever is left.
	if len(out) < DigestSize {
		upcoming := make([]models.Post, 0)
		for _, p := range posts {
			if _, ok := selected[p.ID.Hex()]; ok {
				continue
			}
			if p.Hidden || !p.IsEvent() {
				continue
			}
			if !p.EventDate.After(now) {
				continue
			}
			upcoming = append(upcoming, p)
		}
		sortByEventDateAsc(upcoming)
		for _, p := range upcoming {
			if len(out) >= DigestSize {
				break
			}
			take(p)
		}
	}

	return out
}

func sortByEventDateDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].EventDate.Equal(*posts[j].EventDate) {
			return posts[i].EventDate.After(*posts[j].EventDate)
		}
		return posts[i].ID.Hex() < posts[j].ID.Hex()
	})
}

func sortByEventDateAsc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].EventDate.Equal(*posts[j].EventDate) {
			return posts[i].EventDate.Before(*posts[j].EventDate)
		}
		return posts[i].ID.Hex() < posts[j].ID.Hex()
	})
}
