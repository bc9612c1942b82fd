package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table      string
	ID         string
	ItemID     string
	ParentID   string
	UserID     string
	AuthorName string
	Body       string
	IsApproved string
	IsDeleted  string
	LikeCount  string
	CreatedAt  string
	UpdatedAt  string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:      "social.comment",
	ID:         "id",
	ItemID:     "itemid",
	ParentID:   "parentid",
	UserID:     "userid",
	AuthorName: "authorname",
	Body:       "body",
	IsApproved: "isapproved",
	IsDeleted:  "isdeleted",
	LikeCount:  "likecount",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
