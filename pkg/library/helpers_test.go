package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstromberg/photoalbum/pkg/config"
	"github.com/tstromberg/photoalbum/pkg/photos"
)

var noon = time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)

func writeImage(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("image:"+name), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LibraryPath: filepath.Join(dir, "users.dat"),
		DataDir:     filepath.Join(dir, "data"),
		KeepBackup:  true,
	}
}

// sampleUsers builds two users with two albums each. For alice, shared.jpg sits
// in both albums.
func sampleUsers(t *testing.T, dir string) []*photos.User {
	t.Helper()

	alice, err := photos.NewUser("alice", "secret")
	require.NoError(t, err)
	trip, err := alice.CreateAlbum("Trip")
	require.NoError(t, err)
	best, err := alice.CreateAlbum("Best Of")
	require.NoError(t, err)

	shared, err := photos.NewPhoto(writeImage(t, dir, "shared.jpg", noon))
	require.NoError(t, err)
	shared.SetCaption("eiffel tower")
	_, err = shared.AddTag("location", "Paris")
	require.NoError(t, err)
	_, err = shared.AddTag("person", "alice")
	require.NoError(t, err)

	solo, err := photos.NewPhoto(writeImage(t, dir, "solo.png", noon.AddDate(0, 1, 0)))
	require.NoError(t, err)

	trip.AddPhoto(solo)
	trip.AddPhoto(shared)
	best.AddPhoto(shared)

	bob, err := photos.NewUser("Bob", "")
	require.NoError(t, err)
	work, err := bob.CreateAlbum("work")
	require.NoError(t, err)
	_, err = bob.CreateAlbum("empty")
	require.NoError(t, err)
	w, err := photos.NewPhoto(writeImage(t, dir, "whiteboard.gif", noon.AddDate(0, 0, -3)))
	require.NoError(t, err)
	_, err = w.AddTag("project", "apollo")
	require.NoError(t, err)
	work.AddPhoto(w)

	return []*photos.User{alice, bob}
}

// assertSameUser compares users field by field, including album and photo order.
func assertSameUser(t *testing.T, want, got *photos.User) {
	t.Helper()
	assert.Equal(t, want.Name(), got.Name())
	assert.Equal(t, want.Password(), got.Password())
	require.Len(t, got.Albums(), len(want.Albums()))

	for i, wa := range want.Albums() {
		ga := got.Albums()[i]
		assert.Equal(t, wa.Name(), ga.Name())
		require.Len(t, ga.Photos(), len(wa.Photos()), wa.Name())
		for j, wp := range wa.Photos() {
			gp := ga.Photos()[j]
			assert.Equal(t, wp.Path(), gp.Path())
			assert.True(t, wp.Taken().Equal(gp.Taken()), "taken %s vs %s", wp.Taken(), gp.Taken())
			assert.Equal(t, wp.Caption(), gp.Caption())
			assert.Equal(t, wp.Tags(), gp.Tags())
		}
	}
}
