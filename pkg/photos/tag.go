package photos

import (
	"slices"
	"strings"
)

// Preset tag types offered to every user.
const (
	TagPerson   = "person"
	TagLocation = "location"
)

// Tag is a normalized name/value pair, such as "person: alice". Tags are
// comparable, so == is tag equality and a Tag can key a map.
type Tag struct {
	name  string
	value string
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewTag returns a tag with name and value lowercased and trimmed.
func NewTag(name, value string) (Tag, error) {
	n, v := normalize(name), normalize(value)
	if n == "" || v == "" {
		return Tag{}, Errorf(KindInvalidArgument, "tag name and value must not be empty (got %q=%q)", name, value)
	}
	return Tag{name: n, value: v}, nil
}

// Name returns the tag type, e.g. "location".
func (t Tag) Name() string { return t.name }

// Value returns the tag value, e.g. "paris".
func (t Tag) Value() string { return t.value }

func (t Tag) String() string {
	return t.name + ": " + t.value
}

// TagTypes is the advisory registry of tag types: the presets plus any custom
// types a user has introduced. Photos may carry tags outside the registry.
type TagTypes struct {
	custom []string
}

// NewTagTypes returns a registry holding only the presets.
func NewTagTypes(custom ...string) *TagTypes {
	r := &TagTypes{}
	for _, c := range custom {
		r.Add(c)
	}
	return r
}

// Add registers a custom type. Blank, preset, and already-known types are ignored.
func (r *TagTypes) Add(t string) bool {
	t = normalize(t)
	if t == "" || isPreset(t) || slices.Contains(r.custom, t) {
		return false
	}
	r.custom = append(r.custom, t)
	return true
}

// Custom returns the custom types in registration order.
func (r *TagTypes) Custom() []string {
	return slices.Clone(r.custom)
}

// All returns the presets followed by the custom types, sorted.
func (r *TagTypes) All() []string {
	all := []string{TagPerson, TagLocation}
	custom := r.Custom()
	slices.Sort(custom)
	return append(all, custom...)
}

// Contains reports whether t is a preset or registered custom type.
func (r *TagTypes) Contains(t string) bool {
	t = normalize(t)
	return isPreset(t) || slices.Contains(r.custom, t)
}

func isPreset(t string) bool {
	return t == TagPerson || t == TagLocation
}
