package schema

// SocialCommentPinTable represents the 'social.commentpin' table
type SocialCommentPinTable struct {
	Table     string
	ItemID    string
	CommentID string
	PinnedBy  string
	PinnedAt  string
}

// SocialCommentPin is the schema definition for social.commentpin
var SocialCommentPin = SocialCommentPinTable{
	Table:     "social.commentpin",
	ItemID:    "itemid",
	CommentID: "commentid",
	PinnedBy:  "pinnedby",
	PinnedAt:  "pinnedat",
}
