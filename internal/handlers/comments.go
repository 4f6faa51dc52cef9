package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhivamsh/community-backend/internal/models"
	"github.com/Abhivamsh/community-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment-related requests
type CommentHandler struct {
	feed  *services.FeedService
	likes *services.LikeService
	users *services.UserService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(feed *services.FeedService, likes *services.LikeService, users *services.UserService) *CommentHandler {
	return &CommentHandler{feed: feed, likes: likes, users: users}
}

// CreateComment creates a new comment or reply
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.users.ResolveOrCreateUser(c.Request.Context(), normalizeName(req.AuthorName))
	if err != nil {
		abortWithError(c, err)
		return
	}

	comment, err := h.feed.CreateComment(c.Request.Context(), req.PostID, req.ParentID, author.ID, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPost returns the assembled comment tree for a post
func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	tree, err := h.feed.GetCommentTree(c.Request.Context(), uint(postID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// DeleteComment deletes a comment and its reply subtree
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.feed.DeleteComment(c.Request.Context(), uint(commentID)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// LikeComment records a like on a comment
func (h *CommentHandler) LikeComment(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
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

	like, err := h.likes.RecordLike(c.Request.Context(), user.ID, models.LikeTarget{Kind: models.TargetComment, ID: uint(targetID)})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "comment liked", "like": like})
}

// UnlikeComment removes the caller's like from a comment
func (h *CommentHandler) UnlikeComment(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
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

	if err := h.likes.Unlike(c.Request.Context(), user.ID, models.LikeTarget{Kind: models.TargetComment, ID: uint(targetID)}); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "comment unliked"})
}
