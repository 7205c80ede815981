package schema

// CastTable represents the 'casts' table
type CastTable struct {
	Table       string
	ID          string
	Name        string
	Nationality string
}

// Cast is the schema definition for casts
var Cast = CastTable{
	Table:       "casts",
	ID:          "id",
	Name:        "name",
	Nationality: "nationality",
}

func (t CastTable) Columns() []string {
	return []string{t.ID, t.Name, t.Nationality}
}
