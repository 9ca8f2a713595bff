// Package library holds every user of the photo organizer and persists them to
// a single file.
package library

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/config"
	"github.com/tstromberg/photoalbum/pkg/photos"
)

// Library maps usernames to users. It is not safe for concurrent use: a single
// driver owns it and every user, album, and photo reachable from it.
type Library struct {
	path       string
	dataDir    string
	keepBackup bool

	users    map[string]*photos.User
	tagTypes *photos.TagTypes
}

// New returns an empty library bound to the configured file. It does no I/O.
func New(c *config.Config) *Library {
	return &Library{
		path:       c.LibraryPath,
		dataDir:    c.DataDir,
		keepBackup: c.KeepBackup,
		users:      map[string]*photos.User{},
		tagTypes:   photos.NewTagTypes(),
	}
}

// Open loads the library file if it exists. Otherwise it seeds the stock user
// from the data directory and saves immediately. On a load failure the
// returned library is empty and usable, and the error says why. A file in an
// unsupported format version yields no library at all.
func Open(c *config.Config) (*Library, error) {
	l := New(c)

	_, err := os.Stat(l.path)
	switch {
	case err == nil:
		if err := l.Load(); err != nil {
			if errors.Is(err, ErrUnsupportedVersion) {
				return nil, err
			}
			return l, err
		}
		klog.Infof("opened %s: %d users", l.path, len(l.users))
		return l, nil
	case !errors.Is(err, fs.ErrNotExist):
		return l, photos.Wrapf(err, photos.KindIOFailure, "stat %s", l.path)
	}

	klog.Infof("%s does not exist, seeding stock user from %s", l.path, l.dataDir)
	if _, err := l.SeedStock(l.dataDir); err != nil {
		return l, err
	}
	return l, l.Save()
}

// Path returns the file the library is persisted to.
func (l *Library) Path() string { return l.path }

// TagTypes returns the library's tag-type registry.
func (l *Library) TagTypes() *photos.TagTypes { return l.tagTypes }

// Load replaces the in-memory state with the library file. On failure the
// library is left empty.
func (l *Library) Load() error {
	l.users = map[string]*photos.User{}
	l.tagTypes = photos.NewTagTypes()

	f, err := os.Open(l.path)
	if err != nil {
		return photos.Wrapf(err, photos.KindIOFailure, "open library")
	}
	defer f.Close()

	s, err := decode(f)
	if err != nil {
		klog.Errorf("unable to load %s, starting empty: %v", l.path, err)
		return photos.Wrapf(err, photos.KindIOFailure, "load %s", l.path)
	}

	for _, u := range s.users {
		l.users[u.Name()] = u
	}
	l.tagTypes = photos.NewTagTypes(s.tagTypes...)
	return nil
}

// Save atomically writes the whole library to its file.
func (l *Library) Save() error {
	s := snapshot{users: l.Users(), tagTypes: l.tagTypes.Custom()}
	err := writeFileAtomic(l.path, l.keepBackup, func(w io.Writer) error {
		return encode(w, s)
	})
	if err != nil {
		return photos.Wrapf(err, photos.KindIOFailure, "save %s", l.path)
	}
	klog.V(1).Infof("saved %d users to %s", len(s.users), l.path)
	return nil
}

// User looks up a user by its stored username. The lookup is case-sensitive.
func (l *Library) User(name string) (*photos.User, error) {
	u, ok := l.users[name]
	if !ok {
		return nil, photos.Errorf(photos.KindNotFound, "user %q not found", name)
	}
	return u, nil
}

// Users returns every user, sorted by username.
func (l *Library) Users() []*photos.User {
	us := make([]*photos.User, 0, len(l.users))
	for _, u := range l.users {
		us = append(us, u)
	}
	slices.SortFunc(us, func(a, b *photos.User) int { return strings.Compare(a.Name(), b.Name()) })
	return us
}

// AddUser inserts u and saves. The admin identity cannot be stored.
func (l *Library) AddUser(u *photos.User) error {
	if u == nil {
		return photos.Errorf(photos.KindInvalidArgument, "no user to add")
	}
	if photos.IsAdmin(u.Name()) {
		return photos.Errorf(photos.KindInvalidArgument, "%q is reserved", u.Name())
	}
	if _, ok := l.users[u.Name()]; ok {
		return photos.Errorf(photos.KindDuplicate, "user %q already exists", u.Name())
	}
	l.users[u.Name()] = u
	klog.Infof("added user %s", u.Name())
	return l.Save()
}

// RemoveUser deletes the user stored under name and saves. The admin identity
// cannot be removed.
func (l *Library) RemoveUser(name string) error {
	if photos.IsAdmin(name) {
		return photos.Errorf(photos.KindInvalidArgument, "%q cannot be removed", name)
	}
	if _, ok := l.users[name]; !ok {
		return photos.Errorf(photos.KindNotFound, "user %q not found", name)
	}
	delete(l.users, name)
	klog.Infof("removed user %s", name)
	return l.Save()
}

// Login returns the named user, creating and saving it on first sign-in.
// Callers route the admin identity to the admin surface; Login refuses it.
func (l *Library) Login(name string) (*photos.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, photos.Errorf(photos.KindInvalidArgument, "username must not be empty")
	}
	if photos.IsAdmin(name) {
		return nil, photos.Errorf(photos.KindInvalidArgument, "%q manages users and owns no albums", name)
	}
	if u, ok := l.users[name]; ok {
		return u, nil
	}

	u, err := photos.NewUser(name, "")
	if err != nil {
		return nil, err
	}
	return u, l.AddUser(u)
}

// ListUsers returns the names an administrator manages: every user but admin.
func (l *Library) ListUsers() []string {
	var names []string
	for _, u := range l.Users() {
		if !photos.IsAdmin(u.Name()) {
			names = append(names, u.Name())
		}
	}
	return names
}

// CreateUser adds a user with no password on behalf of an administrator.
func (l *Library) CreateUser(name string) (*photos.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, photos.Errorf(photos.KindInvalidArgument, "username must not be blank")
	}
	u, err := photos.NewUser(name, "")
	if err != nil {
		return nil, err
	}
	if err := l.AddUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes a non-admin user on behalf of an administrator.
func (l *Library) DeleteUser(name string) error {
	return l.RemoveUser(name)
}
