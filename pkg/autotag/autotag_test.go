package autotag

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// fakeSuggester replies from a table keyed by file base name.
type fakeSuggester struct {
	replies map[string][]string
	calls   []string
}

func (f *fakeSuggester) Suggest(_ context.Context, p *photos.Photo, _ string, _ int) ([]string, error) {
	base := filepath.Base(p.Path())
	f.calls = append(f.calls, base)
	tags, ok := f.replies[base]
	if !ok {
		return nil, errors.New("model unavailable")
	}
	return tags, nil
}

func album(t *testing.T, names ...string) *photos.Album {
	t.Helper()
	dir := t.TempDir()
	a, err := photos.NewAlbum("trip")
	require.NoError(t, err)
	for _, n := range names {
		path := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(path, []byte(n), 0o644))
		p, err := photos.NewPhoto(path)
		require.NoError(t, err)
		a.AddPhoto(p)
	}
	return a
}

func TestApply(t *testing.T) {
	a := album(t, "beach.jpg", "tagged.jpg", "broken.jpg")
	_, err := a.Photos()[1].AddTag("keyword", "old")
	require.NoError(t, err)

	s := &fakeSuggester{replies: map[string][]string{
		"beach.jpg":  {"beach", "sunset", "sea", "sand"},
		"tagged.jpg": {"new"},
	}}
	types := photos.NewTagTypes()

	n, err := Apply(context.Background(), s, a, types, Options{TagType: "Keyword", Max: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"beach.jpg", "broken.jpg"}, s.calls, "tagged photos are skipped")
	assert.Equal(t, []string{"beach", "sunset", "sea"}, a.Photos()[0].TagsOf("keyword"))
	assert.Equal(t, []string{"old"}, a.Photos()[1].TagsOf("keyword"))
	assert.Empty(t, a.Photos()[2].Tags())
	assert.True(t, types.Contains("keyword"))
}

func TestApply_Overwrite(t *testing.T) {
	a := album(t, "tagged.jpg")
	p := a.Photos()[0]
	_, err := p.AddTag("keyword", "old")
	require.NoError(t, err)
	_, err = p.AddTag("person", "alice")
	require.NoError(t, err)

	s := &fakeSuggester{replies: map[string][]string{"tagged.jpg": {"new"}}}
	n, err := Apply(context.Background(), s, a, nil, Options{TagType: "keyword", Max: 5, Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"new"}, p.TagsOf("keyword"))
	assert.Equal(t, []string{"alice"}, p.TagsOf("person"), "other tag types are untouched")
}

func TestApply_DryRun(t *testing.T) {
	a := album(t, "beach.jpg")
	s := &fakeSuggester{replies: map[string][]string{"beach.jpg": {"beach"}}}

	n, err := Apply(context.Background(), s, a, nil, Options{TagType: "keyword", Max: 5, DryRun: true})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, a.Photos()[0].Tags())
	assert.Len(t, s.calls, 1)
}

func TestApply_Location(t *testing.T) {
	a := album(t, "paris.jpg")
	s := &fakeSuggester{replies: map[string][]string{"paris.jpg": {"paris", "france"}}}

	_, err := Apply(context.Background(), s, a, nil, Options{TagType: photos.TagLocation, Max: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"france"}, a.Photos()[0].TagsOf(photos.TagLocation), "a photo has one location")
}

func TestApply_InvalidOptions(t *testing.T) {
	a := album(t)
	tests := []struct {
		name string
		o    Options
	}{
		{"blank type", Options{TagType: " ", Max: 1}},
		{"zero max", Options{TagType: "keyword"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(context.Background(), &fakeSuggester{}, a, nil, tt.o)
			assert.True(t, errors.Is(err, photos.ErrInvalidArgument))
		})
	}
}

func TestApply_Cancelled(t *testing.T) {
	a := album(t, "beach.jpg")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &fakeSuggester{}
	_, err := Apply(ctx, s, a, nil, Options{TagType: "keyword", Max: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.calls)
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		reply string
		want  []string
	}{
		{"beach, Sunset,sea", []string{"beach", "sunset", "sea"}},
		{"bird, bird, BIRD.", []string{"bird"}},
		{" , ,\n", []string{}},
		{"", []string{}},
		{"**rock**", []string{"rock"}},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTags(tt.reply))
		})
	}
}

func TestNewGemini_NoKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-2.5-flash")
	assert.True(t, errors.Is(err, photos.ErrInvalidArgument))
}

func TestPrompt(t *testing.T) {
	assert.Contains(t, prompt("keyword", 4), "1-4 comma-separated one-word keyword tags")
	assert.Contains(t, prompt(photos.TagLocation, 4), "city")
	assert.Contains(t, prompt(photos.TagPerson, 2), "0-2")
}
