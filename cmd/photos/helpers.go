package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/config"
	"github.com/tstromberg/photoalbum/pkg/library"
	"github.com/tstromberg/photoalbum/pkg/photos"
)

// loadConfig reads the environment, then applies command-line overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	if libraryFlag != "" {
		c.LibraryPath = libraryFlag
	}
	if dataFlag != "" {
		c.DataDir = dataFlag
	}
	return c, nil
}

// openLibrary opens the configured library. A malformed library file is
// reported and replaced by an empty library on the next save; a file from a
// newer format version stops the command.
func openLibrary() (*library.Library, *config.Config, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	l, err := library.Open(c)
	if err != nil {
		if l == nil || errors.Is(err, library.ErrUnsupportedVersion) || !errors.Is(err, photos.ErrIOFailure) {
			return nil, nil, err
		}
		klog.Errorf("continuing with an empty library: %v", err)
	}
	return l, c, nil
}

// session opens the library and signs in as --user.
func session() (*library.Library, *photos.User, error) {
	if userFlag == "" {
		return nil, nil, photos.Errorf(photos.KindInvalidArgument, "--user is required")
	}
	l, _, err := openLibrary()
	if err != nil {
		return nil, nil, err
	}
	u, err := l.Login(userFlag)
	if err != nil {
		return nil, nil, err
	}
	return l, u, nil
}

// albumSession signs in and looks up one of the user's albums.
func albumSession(name string) (*library.Library, *photos.User, *photos.Album, error) {
	l, u, err := session()
	if err != nil {
		return nil, nil, nil, err
	}
	a, err := u.Album(name)
	if err != nil {
		return nil, nil, nil, err
	}
	return l, u, a, nil
}

// albumPhoto finds the photo stored under path in album a.
func albumPhoto(a *photos.Album, path string) (*photos.Photo, error) {
	p := a.PhotoByPath(path)
	if p == nil {
		return nil, photos.Errorf(photos.KindNotFound, "%s is not in album %q", path, a.Name())
	}
	return p, nil
}

func printPhotos(w io.Writer, ps []*photos.Photo) {
	for _, p := range ps {
		fmt.Fprintf(w, "%s\t%s\n", p.Path(), p)
		for _, t := range p.Tags() {
			fmt.Fprintf(w, "\t%s\n", t)
		}
	}
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
