// Package autotag suggests tags for photos with a generative model and applies
// them to albums.
package autotag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"google.golang.org/genai"
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// Suggester proposes tag values of one type for a photo.
type Suggester interface {
	Suggest(ctx context.Context, p *photos.Photo, tagType string, limit int) ([]string, error)
}

// Options controls Apply.
type Options struct {
	// TagType is the tag name suggestions are stored under.
	TagType string
	// Max bounds the tags added per photo.
	Max int
	// Overwrite replaces existing tags of TagType instead of skipping the photo.
	Overwrite bool
	DryRun    bool
}

// Apply asks s for tags for every photo in a and adds them as TagType=value.
// Photos that already have a TagType tag are skipped unless Overwrite is set.
// The tag type is registered in types. It returns how many tags were added.
func Apply(ctx context.Context, s Suggester, a *photos.Album, types *photos.TagTypes, o Options) (int, error) {
	tagType := strings.ToLower(strings.TrimSpace(o.TagType))
	if tagType == "" {
		return 0, photos.Errorf(photos.KindInvalidArgument, "tag type must not be blank")
	}
	if o.Max <= 0 {
		return 0, photos.Errorf(photos.KindInvalidArgument, "max tags must be positive, got %d", o.Max)
	}
	if types != nil && types.Add(tagType) {
		klog.Infof("registered tag type %q", tagType)
	}

	added := 0
	for _, p := range a.Photos() {
		if err := ctx.Err(); err != nil {
			return added, err
		}

		existing := p.TagsOf(tagType)
		if len(existing) > 0 && !o.Overwrite {
			klog.V(1).Infof("%s has %s tags: %v", p.Path(), tagType, existing)
			continue
		}

		values, err := s.Suggest(ctx, p, tagType, o.Max)
		if err != nil {
			klog.Errorf("suggest %s: %v", p.Path(), err)
			continue
		}
		if len(values) > o.Max {
			values = values[:o.Max]
		}
		klog.Infof("adding %s tags to %s: %v", tagType, p.Path(), values)
		if o.DryRun || len(values) == 0 {
			continue
		}

		for _, v := range existing {
			p.RemoveTag(tagType, v)
		}
		for _, v := range values {
			ok, err := p.AddTag(tagType, v)
			if err != nil {
				klog.Warningf("skipping tag %q on %s: %v", v, p.Path(), err)
				continue
			}
			if ok {
				added++
			}
		}
	}
	klog.Infof("autotag added %d %s tags across %d photos in %s", added, tagType, a.PhotoCount(), a.Name())
	return added, nil
}

// parseTags splits a comma-separated model reply into distinct lowercase values.
func parseTags(reply string) []string {
	tags := []string{}
	for _, f := range strings.Split(reply, ",") {
		t := strings.ToLower(strings.Trim(f, " \t\r\n.\"'`*"))
		if t == "" || slices.Contains(tags, t) {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
}

// Gemini suggests tags with a Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini returns a Gemini suggester using the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, photos.Errorf(photos.KindInvalidArgument, "a Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Suggest sends the photo's image file to the model and parses its reply.
func (g *Gemini) Suggest(ctx context.Context, p *photos.Photo, tagType string, limit int) ([]string, error) {
	mt, ok := mimeTypes[strings.ToLower(filepath.Ext(p.Path()))]
	if !ok {
		return nil, photos.Errorf(photos.KindInvalidArgument, "%s: unsupported image type", p.Path())
	}
	bs, err := os.ReadFile(p.Path())
	if err != nil {
		return nil, photos.Wrapf(err, photos.KindIOFailure, "read %s", p.Path())
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(bs, mt),
			genai.NewPartFromText(prompt(tagType, limit)),
		}, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return parseTags(resp.Text()), nil
}

func prompt(tagType string, limit int) string {
	switch tagType {
	case photos.TagLocation:
		return "If you know where this photo was taken, reply with the name of the place, city, " +
			"or country as a single lowercase word. Otherwise reply with nothing."
	case photos.TagPerson:
		return fmt.Sprintf("Reply with 0-%d comma-separated one-word descriptions of the people in this photo, "+
			"such as child, family, friends, or crowd. Do not guess names.", limit)
	}
	return fmt.Sprintf("Generate 1-%d comma-separated one-word %s tags for this photo. "+
		"Here are some example tags: bw for black and white photos, family for family photos, "+
		"landscape for landscape photos, nature for nature photos, bird for bird photos, "+
		"beach for beach photos, urban for city photos, boat for boat photos. "+
		"Tags should be a present-tense singular word that a professional photographer would want to "+
		"organize their photo albums with. Do not combine multiple words. Use rock instead of rocks.",
		limit, tagType)
}
