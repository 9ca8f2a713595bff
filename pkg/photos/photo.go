// Package photos models users, their albums, and the tagged photos they hold.
package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"k8s.io/klog/v2"
)

// DisplayDateFormat renders a capture time for humans.
var DisplayDateFormat = "Mon Jan 02 15:04:05 MST 2006"

// Photo is a reference to an image file plus its caption, capture time, and tags.
// Photos are shared by pointer between albums: editing one is visible everywhere.
type Photo struct {
	path    string
	taken   time.Time
	caption string
	tags    []Tag
}

// NewPhoto creates a photo for an existing, readable file. The capture time is
// the file's modification time with sub-second precision dropped.
func NewPhoto(path string) (*Photo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, Errorf(KindInvalidArgument, "photo path must not be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Wrapf(err, KindInvalidArgument, "file does not exist: %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, Wrapf(err, KindInvalidArgument, "stat %s", path)
	}
	if !fi.Mode().IsRegular() {
		return nil, Errorf(KindInvalidArgument, "not a regular file: %s", path)
	}

	klog.V(2).Infof("new photo %s taken %s", path, fi.ModTime())
	return &Photo{
		path:  path,
		taken: fi.ModTime().Truncate(time.Second),
	}, nil
}

// RestorePhoto rebuilds a photo from stored metadata without touching the
// filesystem. Tags are normalized and the location rule is applied.
func RestorePhoto(path string, taken time.Time, caption string, tags []Tag) (*Photo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, Errorf(KindInvalidArgument, "photo path must not be empty")
	}
	p := &Photo{path: path, taken: taken.Truncate(time.Second), caption: caption}
	for _, t := range tags {
		if _, err := p.AddTag(t.name, t.value); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Path returns the file path the photo was created from. It is the photo's identity.
func (p *Photo) Path() string { return p.path }

// Taken returns the capture time.
func (p *Photo) Taken() time.Time { return p.taken }

// Caption returns the caption, which may be empty.
func (p *Photo) Caption() string { return p.caption }

// SetCaption replaces the caption.
func (p *Photo) SetCaption(c string) { p.caption = c }

// Tags returns a copy of the photo's tags in the order they were added.
func (p *Photo) Tags() []Tag { return slices.Clone(p.tags) }

// HasTag reports whether t is attached to the photo.
func (p *Photo) HasTag(t Tag) bool { return slices.Contains(p.tags, t) }

// TagsOf returns the values of every tag with the given type.
func (p *Photo) TagsOf(name string) []string {
	name = normalize(name)
	var vs []string
	for _, t := range p.tags {
		if t.name == name {
			vs = append(vs, t.value)
		}
	}
	return vs
}

// AddTag attaches a tag and reports whether the tag set changed. A location tag
// replaces any existing location.
func (p *Photo) AddTag(name, value string) (bool, error) {
	t, err := NewTag(name, value)
	if err != nil {
		return false, err
	}

	if p.HasTag(t) {
		return false, nil
	}

	if t.name == TagLocation {
		p.tags = slices.DeleteFunc(p.tags, func(o Tag) bool { return o.name == TagLocation })
	}
	p.tags = append(p.tags, t)
	return true, nil
}

// RemoveTag detaches a tag and reports whether the tag set changed.
func (p *Photo) RemoveTag(name, value string) bool {
	t, err := NewTag(name, value)
	if err != nil {
		return false
	}
	n := len(p.tags)
	p.tags = slices.DeleteFunc(p.tags, func(o Tag) bool { return o == t })
	return len(p.tags) != n
}

// FormattedDate renders the capture time in local time.
func (p *Photo) FormattedDate() string {
	return p.taken.Local().Format(DisplayDateFormat)
}

// Date returns the local calendar day the photo was taken.
func (p *Photo) Date() civil.Date {
	return civil.DateOf(p.taken.Local())
}

// Equal reports whether both photos refer to the same file path.
func (p *Photo) Equal(o *Photo) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.path == o.path
}

func (p *Photo) String() string {
	c := p.caption
	if c == "" {
		c = "(no caption)"
	}
	return fmt.Sprintf("%s | %s | %s", filepath.Base(p.path), c, p.FormattedDate())
}
