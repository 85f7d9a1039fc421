package models

import (
	"database/sql/driver"
	"strings"

	"github.com/pkg/errors"
)

// GenreList stores a set of genre names as brace-delimited text, e.g.
// "{Jazz,Classical}". This is the format the directory has always stored, so
// existing rows keep decoding; values round-trip by stripping the braces and
// splitting on commas. An empty set is stored as "{}".
type GenreList []string

// Value implements driver.Valuer.
func (g GenreList) Value() (driver.Value, error) {
	return "{" + strings.Join(g, ",") + "}", nil
}

// Scan implements sql.Scanner.
func (g *GenreList) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*g = GenreList{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return errors.Errorf("cannot scan %T into GenreList", src)
	}

	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if s == "" {
		*g = GenreList{}
		return nil
	}
	*g = strings.Split(s, ",")
	return nil
}
