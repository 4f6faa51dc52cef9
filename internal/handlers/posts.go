package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhivamsh/community-backend/internal/models"
	"github.com/Abhivamsh/community-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post-related requests
type PostHandler struct {
	feed  *services.FeedService
	likes *services.LikeService
	users *services.UserService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(feed *services.FeedService, likes *services.LikeService, users *services.UserService) *PostHandler {
	return &PostHandler{feed: feed, likes: likes, users: users}
}

// GetPosts returns paginated posts, newest first
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	posts, total, err := h.feed.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetPost returns a single post with its full comment tree
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	detail, err := h.feed.GetPostDetail(c.Request.Context(), uint(postID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.users.ResolveOrCreateUser(c.Request.Context(), normalizeName(req.AuthorName))
	if err != nil {
		abortWithError(c, err)
		return
	}

	post, err := h.feed.CreatePost(c.Request.Context(), author.ID, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePost deletes a post and everything attached to it
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.feed.DeletePost(c.Request.Context(), uint(postID)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// LikePost records a like on a post
func (h *PostHandler) LikePost(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req models.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.ResolveOrCreateUser(c.Request.Context(), normalizeName(req.UserName))
	if err != nil {
		abortWithError(c, err)
		return
	}

	like, err := h.likes.RecordLike(c.Request.Context(), user.ID, models.LikeTarget{Kind: models.TargetPost, ID: uint(targetID)})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "post liked", "like": like})
}

// UnlikePost removes the caller's like from a post
func (h *PostHandler) UnlikePost(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req models.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.ResolveOrCreateUser(c.Request.Context(), normalizeName(req.UserName))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.likes.Unlike(c.Request.Context(), user.ID, models.LikeTarget{Kind: models.TargetPost, ID: uint(targetID)}); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "post unliked"})
}
