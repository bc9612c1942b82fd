package schema

// SocialCommentLikeTable represents the 'social.commentlike' table
type SocialCommentLikeTable struct {
	Table     string
	CommentID string
	UserID    string
	CreatedAt string
}

// SocialCommentLike is the schema definition for social.commentlike
var SocialCommentLike = SocialCommentLikeTable{
	Table:     "social.commentlike",
	CommentID: "commentid",
	UserID:    "userid",
	CreatedAt: "createdat",
}
