package schema

// MovieTable represents the 'movies' table
type MovieTable struct {
	Table   string
	ID      string
	Name    string
	Plot    string
	Genres  string
	CastsID string
}

// Movie is the schema definition for movies
var Movie = MovieTable{
	Table:   "movies",
	ID:      "id",
	Name:    "name",
	Plot:    "plot",
	Genres:  "genres",
	CastsID: "casts_id",
}

func (t MovieTable) Columns() []string {
	return []string{t.ID, t.Name, t.Plot, t.Genres, t.CastsID}
}
