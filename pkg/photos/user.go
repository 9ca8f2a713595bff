package photos

import (
	"slices"
	"strings"
)

// AdminName is the reserved identity that manages the user roster. It owns no
// albums and is never stored as a User.
const AdminName = "admin"

// IsAdmin reports whether name is the reserved admin identity, ignoring case
// and surrounding space.
func IsAdmin(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), AdminName)
}

// User owns an ordered list of albums whose names are unique ignoring case.
type User struct {
	name     string
	password string
	albums   []*Album
}

// NewUser returns a user with no albums. The password is optional and never
// checked.
func NewUser(name, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Errorf(KindInvalidArgument, "username must not be empty")
	}
	return &User{name: name, password: password}, nil
}

// Name returns the username.
func (u *User) Name() string { return u.name }

// Password returns the stored password, or "" if none was set.
func (u *User) Password() string { return u.password }

// Albums returns the user's albums in order.
func (u *User) Albums() []*Album { return slices.Clone(u.albums) }

// AddAlbum appends a unless it is nil or an album with the same name (ignoring
// case) exists.
func (u *User) AddAlbum(a *Album) bool {
	if a == nil || u.index(a.name) >= 0 {
		return false
	}
	u.albums = append(u.albums, a)
	return true
}

// CreateAlbum creates and adds an empty album.
func (u *User) CreateAlbum(name string) (*Album, error) {
	a, err := NewAlbum(name)
	if err != nil {
		return nil, err
	}
	if !u.AddAlbum(a) {
		return nil, Errorf(KindDuplicate, "album %q already exists", a.name)
	}
	return a, nil
}

// RemoveAlbum removes the album named name, ignoring case and surrounding space.
func (u *User) RemoveAlbum(name string) bool {
	i := u.index(name)
	if i < 0 {
		return false
	}
	u.albums = slices.Delete(u.albums, i, i+1)
	return true
}

// Album looks up an album by name, ignoring case.
func (u *User) Album(name string) (*Album, error) {
	i := u.index(name)
	if i < 0 {
		return nil, Errorf(KindNotFound, "album %q not found", name)
	}
	return u.albums[i], nil
}

// RenameAlbum renames oldName to newName. It fails if oldName is missing or
// newName is blank or taken. The renamed album holds the same photo values in
// the same order, and moves to the end of the album list.
func (u *User) RenameAlbum(oldName, newName string) bool {
	old, err := u.Album(oldName)
	if err != nil || u.index(newName) >= 0 {
		return false
	}
	renamed, err := NewAlbum(newName)
	if err != nil {
		return false
	}
	renamed.photos = slices.Clone(old.photos)

	u.albums = slices.DeleteFunc(u.albums, func(a *Album) bool { return a == old })
	return u.AddAlbum(renamed)
}

func (u *User) index(name string) int {
	name = strings.TrimSpace(name)
	return slices.IndexFunc(u.albums, func(a *Album) bool { return strings.EqualFold(a.name, name) })
}

// Photos returns every photo across the user's albums, deduplicated by path,
// in first-seen album order.
func (u *User) Photos() []*Photo {
	seen := map[string]bool{}
	var ps []*Photo
	for _, a := range u.albums {
		for _, p := range a.photos {
			if seen[p.path] {
				continue
			}
			seen[p.path] = true
			ps = append(ps, p)
		}
	}
	return ps
}

// Photo returns the user's existing photo for path, or creates one from the
// file. A path maps to a single shared Photo value per user.
func (u *User) Photo(path string) (*Photo, error) {
	for _, a := range u.albums {
		if p := a.PhotoByPath(path); p != nil {
			return p, nil
		}
	}
	return NewPhoto(path)
}

// CopyPhoto adds p to the album named to. It reports false if the album
// already holds the photo.
func (u *User) CopyPhoto(p *Photo, to string) (bool, error) {
	if p == nil {
		return false, Errorf(KindInvalidArgument, "no photo to copy")
	}
	dst, err := u.Album(to)
	if err != nil {
		return false, err
	}
	return dst.AddPhoto(p), nil
}

// MovePhoto moves p from one album to another. It reports false if the source
// does not hold p or the destination already does.
func (u *User) MovePhoto(p *Photo, from, to string) (bool, error) {
	if p == nil {
		return false, Errorf(KindInvalidArgument, "no photo to move")
	}
	src, err := u.Album(from)
	if err != nil {
		return false, err
	}
	dst, err := u.Album(to)
	if err != nil {
		return false, err
	}
	if src == dst || !src.ContainsPhoto(p) || !dst.AddPhoto(p) {
		return false, nil
	}
	return src.RemovePhoto(p), nil
}

func (u *User) String() string { return u.name }
