package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Genres is the set of genre names attached to a venue or artist. It is
// stored as a JSON array in the genres column of both tables.
type Genres []string

// NewGenres normalizes raw form values into a Genres set: entries are
// trimmed, blanks are dropped and duplicates collapse onto their first
// appearance.
func NewGenres(raw []string) Genres {
	out := make(Genres, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, g := range raw {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

// Contains reports whether name is one of the genres.
func (g Genres) Contains(name string) bool {
	for _, v := range g {
		if v == name {
			return true
		}
	}
	return false
}

func (g Genres) String() string {
	return strings.Join(g, ", ")
}

// Value implements driver.Valuer. A nil set is written as an empty array
// because the column is NOT NULL.
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	var raw []byte
	switch t := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return fmt.Errorf("genres: unsupported column type %T", src)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("genres: %w", err)
	}
	*g = NewGenres(list)
	return nil
}
