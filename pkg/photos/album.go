package photos

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Album is a named, insertion-ordered collection of photos with no duplicate paths.
type Album struct {
	name   string
	photos []*Photo
}

// NewAlbum returns an empty album. The name is trimmed and must not be blank.
func NewAlbum(name string) (*Album, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Errorf(KindInvalidArgument, "album name must not be empty")
	}
	return &Album{name: name}, nil
}

// Name returns the album name.
func (a *Album) Name() string { return a.name }

// Photos returns the photos in insertion order. The slice is a copy; the
// photos are shared.
func (a *Album) Photos() []*Photo { return slices.Clone(a.photos) }

// PhotoCount returns the number of photos in the album.
func (a *Album) PhotoCount() int { return len(a.photos) }

// AddPhoto appends p unless it is nil or a photo with the same path is present.
func (a *Album) AddPhoto(p *Photo) bool {
	if p == nil || a.ContainsPhoto(p) {
		return false
	}
	a.photos = append(a.photos, p)
	return true
}

// RemovePhoto removes the photo with p's path.
func (a *Album) RemovePhoto(p *Photo) bool {
	i := a.index(p)
	if i < 0 {
		return false
	}
	a.photos = slices.Delete(a.photos, i, i+1)
	return true
}

// ContainsPhoto reports whether a photo with p's path is in the album.
func (a *Album) ContainsPhoto(p *Photo) bool {
	return a.index(p) >= 0
}

// PhotoByPath returns the album's photo for path, or nil.
func (a *Album) PhotoByPath(path string) *Photo {
	for _, p := range a.photos {
		if p.path == path {
			return p
		}
	}
	return nil
}

func (a *Album) index(p *Photo) int {
	if p == nil {
		return -1
	}
	return slices.IndexFunc(a.photos, p.Equal)
}

// DateRange returns the earliest and latest capture times, or zero times for an
// empty album.
func (a *Album) DateRange() (start, end time.Time) {
	for _, p := range a.photos {
		if start.IsZero() || p.taken.Before(start) {
			start = p.taken
		}
		if p.taken.After(end) {
			end = p.taken
		}
	}
	return start, end
}

func (a *Album) String() string {
	return fmt.Sprintf("%s (%d photos)", a.name, len(a.photos))
}
