package search

import (
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// Run returns the user's photos matching q, in first-seen album order.
func Run(u *photos.User, q Query) []*photos.Photo {
	found := []*photos.Photo{}
	for _, p := range u.Photos() {
		if q.matchTags(p) && q.matchDate(p) {
			found = append(found, p)
		}
	}
	klog.V(1).Infof("search %s for %s: %d results", u.Name(), q, len(found))
	return found
}

func (q Query) matchTags(p *photos.Photo) bool {
	m1 := q.Tag1 == nil || p.HasTag(*q.Tag1)
	if q.Tag2 == nil || q.Combinator == None {
		return m1
	}

	m2 := p.HasTag(*q.Tag2)
	if q.Combinator == And {
		return m1 && m2
	}
	return m1 || m2
}

func (q Query) matchDate(p *photos.Photo) bool {
	if !q.dateBounded() {
		return true
	}
	d := p.Date()
	return !d.Before(*q.Start) && !d.After(*q.End)
}

// SaveAs creates an album on u holding results in order.
func SaveAs(u *photos.User, name string, results []*photos.Photo) (*photos.Album, error) {
	a, err := u.CreateAlbum(name)
	if err != nil {
		return nil, err
	}
	for _, p := range results {
		a.AddPhoto(p)
	}
	klog.Infof("saved %d search results to %s/%s", a.PhotoCount(), u.Name(), a.Name())
	return a, nil
}
