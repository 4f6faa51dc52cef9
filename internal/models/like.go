package models

import "time"

// Like represents a like on either a post or a comment. Exactly one of
// PostID/CommentID is set; the check constraints and the partial unique
// indexes below enforce that at the storage layer, so a concurrent
// double-like loses against the database rather than against an
// application-level check.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_likes_user_created;uniqueIndex:uniq_like_user_post;uniqueIndex:uniq_like_user_comment" json:"user_id"`
	PostID    *uint     `gorm:"uniqueIndex:uniq_like_user_post,where:post_id IS NOT NULL;check:chk_like_has_target,post_id IS NOT NULL OR comment_id IS NOT NULL" json:"post_id"`
	CommentID *uint     `gorm:"uniqueIndex:uniq_like_user_comment,where:comment_id IS NOT NULL;check:chk_like_single_target,post_id IS NULL OR comment_id IS NULL" json:"comment_id"`
	CreatedAt time.Time `gorm:"index:idx_likes_user_created" json:"created_at"`

	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post    *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comment *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

// KarmaTransaction is one append-only ledger entry crediting a content
// author for a like they received. Rows are never updated; every karma
// total is derived by aggregating this table over a time window. A row
// lives exactly as long as its originating like.
type KarmaTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_karma_user_created" json:"user_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	LikeID    uint      `gorm:"not null;uniqueIndex" json:"like_id"`
	CreatedAt time.Time `gorm:"index:idx_karma_user_created" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Like Like `gorm:"foreignKey:LikeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TargetKind says what a like points at.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// LikeTarget is the application-level view of a like's polymorphic
// target: a tagged variant instead of two nullable columns.
type LikeTarget struct {
	Kind TargetKind
	ID   uint
}
