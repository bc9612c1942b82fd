// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "strings"

// # Roles

// UserRole is the "rol" claim of an access token.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleMember    UserRole = "member"
)

// # Permissions

// Permission is a bit set of comment actions.
type Permission uint8

const (
	// PermLikeComment allows liking and unliking any visible comment.
	PermLikeComment Permission = 1 << iota

	// PermPinThread allows choosing the pinned thread of an item.
	PermPinThread
)

var grants = map[UserRole]Permission{
	RoleMember:    PermLikeComment,
	RoleModerator: PermLikeComment | PermPinThread,
	RoleAdmin:     PermLikeComment | PermPinThread,
}

// ParseRole normalises a claim value. Unknown roles grant nothing.
func ParseRole(claim string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(claim)))
}

// Can reports whether the role holds every bit of permission.
func (r UserRole) Can(permission Permission) bool {
	granted, ok := grants[r]
	return ok && granted&permission == permission
}
