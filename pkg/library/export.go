package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// ExportAlbum copies an album's image files into outDir as NNNN-<name>, in
// album order. Files already exported with the same size and an up-to-date
// modification time are left alone. Missing sources are skipped. It returns
// the destination paths.
func ExportAlbum(a *photos.Album, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, photos.Wrapf(err, photos.KindIOFailure, "mkdir %s", outDir)
	}

	written := []string{}
	for i, p := range a.Photos() {
		dest := filepath.Join(outDir, fmt.Sprintf("%04d-%s", i+1, filepath.Base(p.Path())))

		sst, err := os.Stat(p.Path())
		if err != nil {
			klog.Warningf("skipping %s: %v", p.Path(), err)
			continue
		}

		if !stale(sst, dest) {
			klog.V(1).Infof("%s is up to date", dest)
			written = append(written, dest)
			continue
		}

		if err := copy.Copy(p.Path(), dest, copy.Options{PreserveTimes: true}); err != nil {
			return written, photos.Wrapf(err, photos.KindIOFailure, "copy %s", p.Path())
		}
		klog.V(1).Infof("exported %s -> %s", p.Path(), dest)
		written = append(written, dest)
	}

	klog.Infof("exported %d of %d photos from %s to %s", len(written), a.PhotoCount(), a.Name(), outDir)
	return written, nil
}

// stale reports whether dest is missing, a different size, or older than src.
func stale(src os.FileInfo, dest string) bool {
	dst, err := os.Stat(dest)
	if err != nil {
		klog.V(1).Infof("updating %s: does not exist", dest)
		return true
	}
	if src.Size() != dst.Size() {
		klog.V(1).Infof("updating %s: size mismatch", dest)
		return true
	}
	if src.ModTime().After(dst.ModTime()) {
		klog.V(1).Infof("updating %s: source newer", dest)
		return true
	}
	return false
}
