package photos

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, albums ...string) *User {
	t.Helper()
	u, err := NewUser("alice", "")
	require.NoError(t, err)
	for _, name := range albums {
		_, err := u.CreateAlbum(name)
		require.NoError(t, err)
	}
	return u
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(" stock ", "stock")
	require.NoError(t, err)
	assert.Equal(t, "stock", u.Name())
	assert.Equal(t, "stock", u.Password())
	assert.Empty(t, u.Albums())

	_, err = NewUser("", "pw")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestIsAdmin(t *testing.T) {
	for name, want := range map[string]bool{
		"admin":   true,
		"ADMIN":   true,
		" Admin ": true,
		"admins":  false,
		"":        false,
	} {
		assert.Equal(t, want, IsAdmin(name), name)
	}
}

func TestUser_DuplicateAlbumName(t *testing.T) {
	u := newUser(t, "Vacation")

	a, err := NewAlbum("vacation")
	require.NoError(t, err)
	assert.False(t, u.AddAlbum(a))
	assert.False(t, u.AddAlbum(nil))
	assert.Len(t, u.Albums(), 1)

	_, err = u.CreateAlbum("VACATION")
	assert.True(t, errors.Is(err, ErrDuplicate))
	_, err = u.CreateAlbum("")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestUser_AlbumLookupAndRemove(t *testing.T) {
	u := newUser(t, "Vacation", "Family")

	a, err := u.Album("FAMILY")
	require.NoError(t, err)
	assert.Equal(t, "Family", a.Name())

	_, err = u.Album("work")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, u.RemoveAlbum("vacation"))
	assert.False(t, u.RemoveAlbum("vacation"))
	assert.Len(t, u.Albums(), 1)
}

func TestUser_RenameAlbum(t *testing.T) {
	dir := t.TempDir()
	u := newUser(t, "Vacation", "Family")
	vac, _ := u.Album("Vacation")
	x := mustPhoto(t, dir, "x.jpg")
	y := mustPhoto(t, dir, "y.jpg")
	vac.AddPhoto(y)
	vac.AddPhoto(x)
	before := vac.Photos()

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"missing source", "work", "job", false},
		{"target taken ignoring case", "Vacation", "family", false},
		{"blank target", "Vacation", "  ", false},
		{"renamed", "vacation", "Holiday", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.RenameAlbum(tt.from, tt.to))
		})
	}

	_, err := u.Album("Vacation")
	assert.True(t, errors.Is(err, ErrNotFound))

	renamed, err := u.Album("holiday")
	require.NoError(t, err)
	assert.Equal(t, "Holiday", renamed.Name())
	require.Equal(t, before, renamed.Photos())
	assert.Same(t, y, renamed.Photos()[0], "photo identity survives rename")
	assert.Len(t, u.Albums(), 2)
}

func TestUser_RenameToSameNameDifferentCase(t *testing.T) {
	u := newUser(t, "trip")
	assert.False(t, u.RenameAlbum("trip", "TRIP"), "name is already taken ignoring case")
}

func TestUser_PaddedAlbumNames(t *testing.T) {
	tests := []struct {
		name       string
		op         func(u *User) bool
		want       bool
		wantAlbums []string
	}{
		{"rename padded source", func(u *User) bool { return u.RenameAlbum(" Vacation ", "Trip") }, true, []string{"Family", "Trip"}},
		{"rename padded target", func(u *User) bool { return u.RenameAlbum("vacation", "  Trip ") }, true, []string{"Family", "Trip"}},
		{"rename to padded taken name", func(u *User) bool { return u.RenameAlbum("Vacation", " family ") }, false, []string{"Vacation", "Family"}},
		{"remove padded", func(u *User) bool { return u.RemoveAlbum(" vacation ") }, true, []string{"Family"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUser(t, "Vacation", "Family")
			assert.Equal(t, tt.want, tt.op(u))

			var got []string
			for _, a := range u.Albums() {
				got = append(got, a.Name())
			}
			assert.Equal(t, tt.wantAlbums, got)
		})
	}
}

func TestUser_PhotosAndInterning(t *testing.T) {
	dir := t.TempDir()
	u := newUser(t, "a", "b")
	a, _ := u.Album("a")
	b, _ := u.Album("b")

	x := mustPhoto(t, dir, "x.jpg")
	y := mustPhoto(t, dir, "y.jpg")
	z := mustPhoto(t, dir, "z.jpg")
	a.AddPhoto(y)
	a.AddPhoto(x)
	b.AddPhoto(x)
	b.AddPhoto(z)

	assert.Equal(t, []*Photo{y, x, z}, u.Photos())

	got, err := u.Photo(x.Path())
	require.NoError(t, err)
	assert.Same(t, x, got)

	fresh, err := u.Photo(touch(t, dir, "w.jpg", x.Taken()))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fresh.Path(), "w.jpg"))

	_, err = u.Photo(dir + "/missing.jpg")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestUser_CopyPhoto(t *testing.T) {
	u := newUser(t, "a", "b")
	a, _ := u.Album("a")
	b, _ := u.Album("b")
	p := mustPhoto(t, t.TempDir(), "p.jpg")
	a.AddPhoto(p)

	ok, err := u.CopyPhoto(p, "B")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.CopyPhoto(p, "b")
	require.NoError(t, err)
	assert.False(t, ok, "already in target")

	_, err = u.CopyPhoto(p, "nowhere")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = u.CopyPhoto(nil, "b")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	p.SetCaption("shared")
	assert.Equal(t, "shared", b.Photos()[0].Caption())
	assert.Equal(t, 1, a.PhotoCount())
}

func TestUser_MovePhoto(t *testing.T) {
	dir := t.TempDir()
	u := newUser(t, "a", "b")
	a, _ := u.Album("a")
	b, _ := u.Album("b")
	p := mustPhoto(t, dir, "p.jpg")
	q := mustPhoto(t, dir, "q.jpg")
	a.AddPhoto(p)
	a.AddPhoto(q)
	b.AddPhoto(q)

	ok, err := u.MovePhoto(p, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, a.ContainsPhoto(p))
	assert.Same(t, p, b.PhotoByPath(p.Path()))

	ok, err = u.MovePhoto(q, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok, "target already holds q")
	assert.True(t, a.ContainsPhoto(q))

	ok, err = u.MovePhoto(p, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok, "source no longer holds p")

	ok, err = u.MovePhoto(q, "a", "A")
	require.NoError(t, err)
	assert.False(t, ok, "same album")

	_, err = u.MovePhoto(p, "missing", "b")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = u.MovePhoto(p, "a", "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
