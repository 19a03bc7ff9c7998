package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsroom/calendar"
	"newsroom/repositories"
)

// PostICSHandler godoc
// @Summary      Download event as ICS
// @Tags         calendar
// @Param        id  path  string  true  "ObjectID"
// @Produce      text/calendar
// @Success      200  {string}  string
// @Failure      404  {object}  object{error=string}
// @Failure      422  {object}  object{error=string}
// @Router       /posts/{id}/calendar.ics [get]
func PostICSHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil || post.Hidden {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		ics, err := calendar.ICS(post)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no event date set"})
			return
		}

		filename := strings.ReplaceAll(post.Title, " ", "_") + ".ics"
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/calendar", []byte(ics))
	}
}

// PostGoogleCalendarHandler godoc
// @Summary      Google Calendar prefill link for an event
// @Tags         calendar
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{url=string}
// @Failure      404  {object}  object{error=string}
// @Failure      422  {object}  object{error=string}
// @Router       /posts/{id}/gcal [get]
func PostGoogleCalendarHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil || post.Hidden {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		u, err := calendar.GoogleCalendarURL(post)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no event date set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": u})
	}
}
