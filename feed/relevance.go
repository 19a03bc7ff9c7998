package feed

import (
	"sort"

	"newsroom/models"
)

// CategorySet is a set of category names. Matching is exact: the
// preferences screen writes normalized values and posts are tagged from
// the same fixed list, so no folding happens here.
type CategorySet map[string]struct{}

func (s CategorySet) Has(category string) bool {
	_, ok := s[category]
	return ok
}

// PostsByID indexes a post snapshot by ObjectID hex for starred-post
// lookups.
func PostsByID(posts []models.Post) map[string]models.Post {
	byID := make(map[string]models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID.Hex()] = p
	}
	return byID
}

// RelevantCategories computes the categories a user cares about: their
// explicit preference picks plus the categories of every post they
// starred. Starred ids that point at hidden or removed posts are dropped
// without error; the favorites list is allowed to go stale.
func RelevantCategories(profile *models.UserProfile, postsByID map[string]models.Post) CategorySet {
	set := make(CategorySet)
	for _, c := range profile.Categories {
		set[c] = struct{}{}
	}
	for _, id := range profile.StarredPosts {
		p, ok := postsByID[id]
		if !ok || p.Hidden {
			continue
		}
		for _, c := range p.Categories {
			set[c] = struct{}{}
		}
	}
	return set
}

// IsRelevant reports whether a post belongs on the user's For-You page:
// not hidden and sharing at least one category with the set. A post with
// no categories matches nobody, even against a non-empty set.
func IsRelevant(post *models.Post, categories CategorySet) bool {
	if post.Hidden {
		return false
	}
	for _, c := range post.Categories {
		if categories.Has(c) {
			return true
		}
	}
	return false
}

// ForYou filters a post snapshot down to the user's relevant posts,
// newest first. An empty result is normal for a fresh profile with no
// preferences and no stars.
func ForYou(profile *models.UserProfile, posts []models.Post) []models.Post {
	relevant := RelevantCategories(profile, PostsByID(posts))

	out := make([]models.Post, 0)
	for _, p := range posts {
		if IsRelevant(&p, relevant) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}
