package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"newsroom/models"
	"newsroom/prefs"
	"newsroom/repositories"
)

// PostPage is the pagination envelope for post listings.
type PostPage struct {
	Data     []models.Post `json:"data"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}

// PostInput is the admin create/edit payload.
type PostInput struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Categories   []string   `json:"categories"`
	EventDate    *time.Time `json:"event_date"`
	EventEndDate *time.Time `json:"event_end_date"`
	Location     string     `json:"location"`
	ImageURL     string     `json:"image_url"`
}

func (in *PostInput) toModel() models.Post {
	return models.Post{
		Title:        in.Title,
		Content:      in.Content,
		Categories:   prefs.Normalize(in.Categories),
		EventDate:    in.EventDate,
		EventEndDate: in.EventEndDate,
		Location:     in.Location,
		ImageURL:     in.ImageURL,
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List visible posts with filters and pagination
// @Tags         posts
// @Param        page        query  int       false  "Page number (1-based)"
// @Param        page_size   query  int       false  "Page size (<=100)"
// @Param        categories  query  []string  false  "Categories (OR match)"
// @Param        upcoming    query  bool      false  "Drop events that already happened"
// @Produce      json
// @Success      200  {object}  handlers.PostPage
// @Router       /posts [get]
func ListPostsHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var opt repositories.ListPostsOptions
		opt.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		opt.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		opt.Categories = c.QueryArray("categories")
		opt.UpcomingOnly = c.Query("upcoming") == "true"
		opt.Now = time.Now()

		posts, total, err := repo.ListVisible(c.Request.Context(), opt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if posts == nil {
			posts = []models.Post{}
		}
		c.JSON(http.StatusOK, PostPage{
			Data:     posts,
			Page:     opt.Page,
			PageSize: opt.PageSize,
			Total:    total,
		})
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a single visible post by ObjectID
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  models.Post
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{id} [get]
func GetPostHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil || post.Hidden {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Description  Create a new post (admin only)
// @Tags         admin
// @Param        post  body  handlers.PostInput  true  "Post fields"
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Post
// @Failure      400  {object}  object{error=string}
// @Router       /admin/posts [post]
func CreatePostHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post := in.toModel()
		if err := post.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := repo.Insert(c.Request.Context(), &post); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// UpdatePostHandler godoc
// @Summary      Update post
// @Description  Replace the editable fields of a post (admin only)
// @Tags         admin
// @Param        id    path  string              true  "ObjectID"
// @Param        post  body  handlers.PostInput  true  "Post fields"
// @Accept       json
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      404  {object}  object{error=string}
// @Router       /admin/posts/{id} [put]
func UpdatePostHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post := in.toModel()
		if err := post.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := repo.Update(c.Request.Context(), c.Param("id"), &post)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "post updated"})
	}
}

// SetPostHiddenHandler flips the soft-delete flag. Hidden posts drop out
// of every listing and out of digest selection but stay in the store.
//
// @Summary      Hide or unhide post
// @Tags         admin
// @Param        id      path   string  true  "ObjectID"
// @Param        hidden  query  bool    true  "New hidden state"
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      404  {object}  object{error=string}
// @Router       /admin/posts/{id}/hidden [put]
func SetPostHiddenHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		hidden := c.Query("hidden") == "true"
		err := repo.SetHidden(c.Request.Context(), c.Param("id"), hidden)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "post visibility updated"})
	}
}
