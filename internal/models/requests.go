package models

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// CreateCommentRequest represents the request body for creating a comment
type CreateCommentRequest struct {
	PostID     uint   `json:"post_id" binding:"required"`
	ParentID   *uint  `json:"parent_id"` // nil for top-level, set for replies
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// LikeRequest represents the request body for liking a post or comment
type LikeRequest struct {
	UserName string `json:"user_name" binding:"required"`
}
