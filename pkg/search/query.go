// Package search evaluates tag and date predicates over a user's photos.
package search

import (
	"strings"

	"cloud.google.com/go/civil"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// Combinator joins the two tag predicates of a Query.
type Combinator int

const (
	None Combinator = iota
	And
	Or
)

func (c Combinator) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "None"
	}
}

// ParseCombinator accepts "", "none", "and", or "or" in any case.
func ParseCombinator(s string) (Combinator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "and":
		return And, nil
	case "or":
		return Or, nil
	}
	return None, photos.Errorf(photos.KindInvalidQuery, "unknown combinator %q (want none, and, or)", s)
}

// Query selects photos by up to two tags and an inclusive date range. Nil
// fields are absent.
type Query struct {
	Tag1       *photos.Tag
	Tag2       *photos.Tag
	Combinator Combinator
	Start      *civil.Date
	End        *civil.Date
}

// ParseTag parses "name=value". Blank input means no predicate and returns nil.
func ParseTag(s string) (*photos.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.Contains(value, "=") {
		return nil, photos.Errorf(photos.KindInvalidQuery, "tag %q is not name=value", s)
	}
	t, err := photos.NewTag(name, value)
	if err != nil {
		return nil, photos.Wrapf(err, photos.KindInvalidQuery, "tag %q", s)
	}
	return &t, nil
}

// ParseDate parses a yyyy-mm-dd date. Blank input returns nil.
func ParseDate(s string) (*civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, photos.Wrapf(err, photos.KindInvalidQuery, "date %q is not yyyy-mm-dd", s)
	}
	return &d, nil
}

// ParseQuery builds a Query from the text a user typed into a search form.
func ParseQuery(tag1, tag2, combinator, start, end string) (Query, error) {
	var q Query
	var err error

	if q.Tag1, err = ParseTag(tag1); err != nil {
		return Query{}, err
	}
	if q.Tag2, err = ParseTag(tag2); err != nil {
		return Query{}, err
	}
	if q.Combinator, err = ParseCombinator(combinator); err != nil {
		return Query{}, err
	}
	if q.Start, err = ParseDate(start); err != nil {
		return Query{}, err
	}
	if q.End, err = ParseDate(end); err != nil {
		return Query{}, err
	}
	return q, nil
}

func (q Query) String() string {
	var parts []string
	if q.Tag1 != nil {
		parts = append(parts, q.Tag1.Name()+"="+q.Tag1.Value())
	}
	if q.Tag2 != nil && q.Combinator != None {
		parts = append(parts, q.Combinator.String(), q.Tag2.Name()+"="+q.Tag2.Value())
	}
	if q.dateBounded() {
		parts = append(parts, "from", q.Start.String(), "to", q.End.String())
	}
	if len(parts) == 0 {
		return "all photos"
	}
	return strings.Join(parts, " ")
}

// dateBounded reports whether both date bounds are set. A half-open range
// disables the date filter.
func (q Query) dateBounded() bool {
	return q.Start != nil && q.End != nil
}
