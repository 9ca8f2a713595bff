package library

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// StockName names both the stock user and its single album.
const StockName = "stock"

var imageExts = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// IsImage reports whether path has an image extension we load, ignoring case.
func IsImage(path string) bool {
	return slices.Contains(imageExts, strings.ToLower(filepath.Ext(path)))
}

// findImages lists image files directly inside dir, sorted by name. Hidden
// files and subdirectories are skipped.
func findImages(dir string) ([]string, error) {
	des, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	sort.Sort(des)

	found := []string{}
	for _, de := range des {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		if !IsImage(path) {
			klog.V(2).Infof("skipping %s: not an image", path)
			continue
		}
		found = append(found, path)
	}
	return found, nil
}

// SeedStock builds the stock user, whose stock album holds every readable image
// in dir, and stores it in the library without saving. Unreadable files are
// skipped; a missing dir yields an empty album.
func (l *Library) SeedStock(dir string) (*photos.User, error) {
	u, err := photos.NewUser(StockName, StockName)
	if err != nil {
		return nil, err
	}
	a, err := u.CreateAlbum(StockName)
	if err != nil {
		return nil, err
	}

	paths, err := findImages(dir)
	if err != nil {
		klog.Warningf("no stock images: %v", err)
	}

	for _, path := range paths {
		p, err := photos.NewPhoto(path)
		if err != nil {
			klog.Warningf("skipping stock image: %v", err)
			continue
		}
		a.AddPhoto(p)
	}

	klog.Infof("seeded %s user with %d photos from %s", StockName, a.PhotoCount(), dir)
	l.users[u.Name()] = u
	return u, nil
}

// ImportDir adds every image directly inside dir to album a of user u. Photos
// the user already has elsewhere are shared rather than duplicated. It returns
// how many photos were added.
func ImportDir(u *photos.User, a *photos.Album, dir string) (int, error) {
	paths, err := findImages(dir)
	if err != nil {
		return 0, photos.Wrapf(err, photos.KindIOFailure, "import")
	}

	added := 0
	for _, path := range paths {
		p, err := u.Photo(path)
		if err != nil {
			klog.Warningf("skipping %s: %v", path, err)
			continue
		}
		if a.AddPhoto(p) {
			klog.V(1).Infof("imported %s into %s/%s", path, u.Name(), a.Name())
			added++
		}
	}
	return added, nil
}
