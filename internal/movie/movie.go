// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package movie implements the movie-service domain. Movies reference casts
// held by the cast service; references are verified when they are written.
package movie

import "github.com/taibuivan/cinecast/pkg/optional"

// Movie is a film and the ids of the casts credited in it.
type Movie struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Plot    string   `json:"plot"`
	Genres  []string `json:"genres"`
	CastsID []int64  `json:"casts_id"`
}

// CreateInput is the body of POST /movies. Every field is required; empty
// lists are allowed. Any client-supplied id is ignored.
type CreateInput struct {
	Name    string   `json:"name"`
	Plot    string   `json:"plot"`
	Genres  []string `json:"genres"`
	CastsID []int64  `json:"casts_id"`
}

// UpdateInput is the body of PUT /movies/{id}. Only keys present in the
// document are applied. None of the fields accepts null.
type UpdateInput struct {
	Name    optional.Field[string]   `json:"name"`
	Plot    optional.Field[string]   `json:"plot"`
	Genres  optional.Field[[]string] `json:"genres"`
	CastsID optional.Field[[]int64]  `json:"casts_id"`
}

// Field names for validation
const (
	FieldName    = "name"
	FieldPlot    = "plot"
	FieldGenres  = "genres"
	FieldCastsID = "casts_id"
)

// Column limits of the movies table.
const (
	MaxNameLen = 50
	MaxPlotLen = 250
)

// apply merges the supplied fields of input into m.
func (input UpdateInput) apply(m *Movie) {
	input.Name.Apply(&m.Name)
	input.Plot.Apply(&m.Plot)
	input.Genres.Apply(&m.Genres)
	input.CastsID.Apply(&m.CastsID)
}
