package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"newsroom/config"
	"newsroom/models"
	"newsroom/prefs"
	"newsroom/repositories"
)

// ProfileInput bootstraps a profile right after login, the same write the
// web client fires once authentication succeeds.
type ProfileInput struct {
	Email string `json:"email" binding:"required,email"`
}

// PreferencesInput is the preferences-page payload.
type PreferencesInput struct {
	Categories []string `json:"categories"`
	WeeklyTop5 bool     `json:"weekly_top5"`
}

// BootstrapProfileHandler godoc
// @Summary      Create or refresh own profile
// @Tags         me
// @Param        profile  body  handlers.ProfileInput  true  "Verified email"
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.UserProfile
// @Router       /me/profile [post]
func BootstrapProfileHandler(repo *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		profile, err := repo.UpsertProfile(c.Request.Context(), c.GetString("uid"), in.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// GetMeHandler godoc
// @Summary      Get own profile
// @Tags         me
// @Produce      json
// @Success      200  {object}  models.UserProfile
// @Failure      404  {object}  object{error=string}
// @Router       /me [get]
func GetMeHandler(repo *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := repo.FindByID(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdatePreferencesHandler godoc
// @Summary      Save preferences
// @Description  Save category picks (min 3 from the allow-list) and the weekly digest opt-in
// @Tags         me
// @Param        preferences  body  handlers.PreferencesInput  true  "Preferences"
// @Accept       json
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      400  {object}  object{error=string}
// @Router       /me/preferences [put]
func UpdatePreferencesHandler(repo *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in PreferencesInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		categories := prefs.Normalize(in.Categories)
		if !prefs.Validate(categories, config.GetConfig().Categories) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pick at least 3 categories from the offered options"})
			return
		}

		err := repo.UpdatePreferences(c.Request.Context(), c.GetString("uid"), categories, in.WeeklyTop5)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "preferences saved"})
	}
}

// StarPostHandler godoc
// @Summary      Star a post
// @Tags         me
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{starred_posts=[]string}
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id}/star [post]
func StarPostHandler(users *repositories.UserRepository, posts *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")
		post, err := posts.FindByID(c.Request.Context(), postID)
		if err != nil || post.Hidden {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		profile, err := users.FindByID(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		if !profile.HasStarred(postID) {
			starred := append(profile.StarredPosts, postID)
			if err := users.UpdateStarredPosts(c.Request.Context(), profile.ID, starred); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			profile.StarredPosts = starred
		}
		c.JSON(http.StatusOK, gin.H{"starred_posts": profile.StarredPosts})
	}
}

// UnstarPostHandler godoc
// @Summary      Unstar a post
// @Tags         me
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{starred_posts=[]string}
// @Router       /posts/{id}/star [delete]
func UnstarPostHandler(users *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")

		profile, err := users.FindByID(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		starred := make([]string, 0, len(profile.StarredPosts))
		for _, id := range profile.StarredPosts {
			if id != postID {
				starred = append(starred, id)
			}
		}
		if len(starred) != len(profile.StarredPosts) {
			if err := users.UpdateStarredPosts(c.Request.Context(), profile.ID, starred); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"starred_posts": starred})
	}
}

// ListStarredHandler godoc
// @Summary      List starred posts
// @Description  Resolve the user's favorites; ids pointing at hidden or removed posts are dropped
// @Tags         me
// @Produce      json
// @Success      200  {array}  models.Post
// @Router       /me/starred [get]
func ListStarredHandler(users *repositories.UserRepository, posts *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := users.FindByID(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		out := make([]models.Post, 0, len(profile.StarredPosts))
		for _, id := range profile.StarredPosts {
			post, err := posts.FindByID(c.Request.Context(), id)
			if err != nil || post.Hidden {
				continue
			}
			out = append(out, *post)
		}
		c.JSON(http.StatusOK, out)
	}
}
