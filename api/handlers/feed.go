package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/feed"
	"newsroom/repositories"
)

// ForYouHandler godoc
// @Summary      For-You feed
// @Description  Posts matching the user's preference categories and the categories of their starred posts
// @Tags         feed
// @Produce      json
// @Success      200  {array}  models.Post
// @Failure      404  {object}  object{error=string}
// @Router       /feed/foryou [get]
func ForYouHandler(users *repositories.UserRepository, posts *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := users.FindByID(c.Request.Context(), c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		snapshot, err := posts.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// An empty result is normal for a profile with no preferences
		// and no starred posts.
		c.JSON(http.StatusOK, feed.ForYou(profile, snapshot))
	}
}
