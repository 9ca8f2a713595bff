package library

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// Watch adds images that appear in dir to album a of user u, saving the library
// after each addition. It blocks until ctx is done and is the only code
// touching the library while it runs.
func (l *Library) Watch(ctx context.Context, u *photos.User, a *photos.Album, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	klog.Infof("watching %s for new photos in %s/%s ...", dir, u.Name(), a.Name())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			klog.V(1).Infof("event: %s", event)
			if !addFromEvent(u, a, event) {
				continue
			}
			if err := l.Save(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch %s: %v", dir, err)
		}
	}
}

// addFromEvent adds the image named by a create, write, or rename event.
func addFromEvent(u *photos.User, a *photos.Album, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	if !IsImage(event.Name) {
		return false
	}

	p, err := u.Photo(event.Name)
	if err != nil {
		// renames report the old name, which is gone
		klog.V(1).Infof("ignoring %s: %v", event.Name, err)
		return false
	}
	if !a.AddPhoto(p) {
		return false
	}
	klog.Infof("added %s to %s/%s", event.Name, u.Name(), a.Name())
	return true
}
