package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom/feed"
	"newsroom/models"
)

func TestRelevantCategoriesUnionsPreferencesAndStars(t *testing.T) {
	posts := []models.Post{
		event(1, "starred", now, "Athletics", "Student Life"),
		event(2, "unrelated", now, "Business"),
	}
	profile := models.UserProfile{
		ID:           "u1",
		Categories:   []string{"Engineering"},
		StarredPosts: []string{oid(1).Hex()},
	}

	set := feed.RelevantCategories(&profile, feed.PostsByID(posts))

	assert.True(t, set.Has("Engineering"))
	assert.True(t, set.Has("Athletics"))
	assert.True(t, set.Has("Student Life"))
	assert.False(t, set.Has("Business"))
}

func TestRelevantCategoriesDropsDanglingAndHiddenStars(t *testing.T) {
	hidden := event(1, "hidden", now, "Athletics")
	hidden.Hidden = true
	posts := []models.Post{hidden}

	profile := models.UserProfile{
		ID:           "u1",
		StarredPosts: []string{oid(1).Hex(), oid(42).Hex()},
	}

	set := feed.RelevantCategories(&profile, feed.PostsByID(posts))
	assert.Empty(t, set)
}

func TestIsRelevantRequiresCategoryOverlap(t *testing.T) {
	set := feed.CategorySet{"Engineering": {}}

	match := article(1, "match", "Engineering", "Business")
	noMatch := article(2, "no match", "Business")

	assert.True(t, feed.IsRelevant(&match, set))
	assert.False(t, feed.IsRelevant(&noMatch, set))
}

// A post with no categories matches nobody, whatever the set contains.
func TestIsRelevantEmptyCategoriesNeverMatch(t *testing.T) {
	uncategorized := article(1, "uncategorized")

	assert.False(t, feed.IsRelevant(&uncategorized, feed.CategorySet{}))
	assert.False(t, feed.IsRelevant(&uncategorized, feed.CategorySet{"Engineering": {}, "Business": {}}))
}

func TestIsRelevantHiddenPostNeverMatches(t *testing.T) {
	p := article(1, "hidden", "Engineering")
	p.Hidden = true

	assert.False(t, feed.IsRelevant(&p, feed.CategorySet{"Engineering": {}}))
}

func TestForYouEmptyProfileYieldsEmptyFeed(t *testing.T) {
	posts := []models.Post{
		article(1, "a", "Engineering"),
		article(2, "b", "Business"),
	}
	profile := models.UserProfile{ID: "u1"}

	got := feed.ForYou(&profile, posts)
	assert.Empty(t, got)
}

func TestForYouSortsNewestFirst(t *testing.T) {
	// article(n) sets CreatedAt to now minus n days
	posts := []models.Post{
		article(3, "oldest", "Engineering"),
		article(1, "newest", "Engineering"),
		article(2, "middle", "Engineering"),
		article(4, "other", "Business"),
	}
	profile := models.UserProfile{ID: "u1", Categories: []string{"Engineering"}}

	got := feed.ForYou(&profile, posts)

	want := []string{oid(1).Hex(), oid(2).Hex(), oid(3).Hex()}
	assert.Equal(t, want, ids(got))
}
