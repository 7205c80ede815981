// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cast implements the cast-service domain: people who appear in movies.
package cast

import "github.com/taibuivan/cinecast/pkg/optional"

// Cast is a person credited in a movie.
type Cast struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
}

// CreateInput is the body of POST /casts. Any client-supplied id is ignored.
type CreateInput struct {
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
}

// UpdateInput is the body of PUT /casts/{id}. Only keys present in the
// document are applied; "nationality": null clears the nationality.
type UpdateInput struct {
	Name        optional.Field[string] `json:"name"`
	Nationality optional.Field[string] `json:"nationality"`
}

// Field names for validation
const (
	FieldName        = "name"
	FieldNationality = "nationality"
)

// Column limits of the casts table.
const (
	MaxNameLen        = 50
	MaxNationalityLen = 20
)

// apply merges the supplied fields of input into c.
func (input UpdateInput) apply(c *Cast) {
	input.Name.Apply(&c.Name)
	input.Nationality.ApplyNullable(&c.Nationality)
}
