// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered identifiers.
//
// Both services stamp every request with one, so request ids sort in the
// order the requests arrived when logs are merged.
package uuidv7

import "github.com/google/uuid"

// New generates a UUIDv7 string. If the clock-based generator fails it falls
// back to a random UUIDv4, so callers never have to handle an error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
