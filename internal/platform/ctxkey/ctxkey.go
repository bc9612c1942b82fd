// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey enumerates the request-scoped values carried in a context.
package ctxkey

// Key identifies one value; ctxutil owns reads and writes.
type Key uint8

const (
	RequestID Key = iota + 1
	Logger
	Claims
)

func (k Key) String() string {
	switch k {
	case RequestID:
		return "request_id"
	case Logger:
		return "logger"
	case Claims:
		return "claims"
	default:
		return "unknown"
	}
}
