package library

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// A library file is the magic, a version byte, then a sequence of records:
//
//	kind (1 byte) | payload length (uvarint) | JSON payload
//
// The first record is meta, then one user record per user, then end.
const (
	magic         = "PHLB"
	formatVersion = byte(1)

	// maxRecord bounds a single payload so a corrupt length cannot exhaust memory.
	maxRecord = 256 << 20
)

type recordKind byte

const (
	recordMeta recordKind = iota + 1
	recordUser
	recordEnd
)

type metaRecord struct {
	TagTypes []string `json:"tag_types,omitempty"`
	Users    int      `json:"users"`
}

type userRecord struct {
	Name     string        `json:"name"`
	Password string        `json:"password,omitempty"`
	Photos   []photoRecord `json:"photos"`
	Albums   []albumRecord `json:"albums"`
}

type photoRecord struct {
	Path    string      `json:"path"`
	Taken   int64       `json:"taken"`
	Caption string      `json:"caption,omitempty"`
	Tags    [][2]string `json:"tags,omitempty"`
}

// albumRecord refers to photos by index into the owning user's photo table, so
// a photo held by several albums is restored as one shared value.
type albumRecord struct {
	Name   string `json:"name"`
	Photos []int  `json:"photos"`
}

type endRecord struct {
	Records int `json:"records"`
}

// snapshot is everything stored in a library file.
type snapshot struct {
	users    []*photos.User
	tagTypes []string
}

var errMalformed = errors.New("malformed library file")

// ErrUnsupportedVersion reports a library file written in a format this build
// cannot read. Unlike malformed data it must not be overwritten.
var ErrUnsupportedVersion = errors.New("unsupported library format version")

func encode(w io.Writer, s snapshot) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return err
	}
	if err := bw.WriteByte(formatVersion); err != nil {
		return err
	}

	n := 0
	if err := writeRecord(bw, recordMeta, metaRecord{TagTypes: s.tagTypes, Users: len(s.users)}); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	n++

	for _, u := range s.users {
		if err := writeRecord(bw, recordUser, newUserRecord(u)); err != nil {
			return fmt.Errorf("write user %s: %w", u.Name(), err)
		}
		n++
	}

	if err := writeRecord(bw, recordEnd, endRecord{Records: n}); err != nil {
		return fmt.Errorf("write end: %w", err)
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, kind recordKind, v any) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := w.WriteByte(byte(kind)); err != nil {
		return err
	}
	if _, err := w.Write(binary.AppendUvarint(nil, uint64(len(bs)))); err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

func newUserRecord(u *photos.User) userRecord {
	r := userRecord{Name: u.Name(), Password: u.Password(), Photos: []photoRecord{}, Albums: []albumRecord{}}
	index := map[string]int{}

	for _, p := range u.Photos() {
		index[p.Path()] = len(r.Photos)
		pr := photoRecord{Path: p.Path(), Taken: p.Taken().Unix(), Caption: p.Caption()}
		for _, t := range p.Tags() {
			pr.Tags = append(pr.Tags, [2]string{t.Name(), t.Value()})
		}
		r.Photos = append(r.Photos, pr)
	}

	for _, a := range u.Albums() {
		ar := albumRecord{Name: a.Name(), Photos: []int{}}
		for _, p := range a.Photos() {
			ar.Photos = append(ar.Photos, index[p.Path()])
		}
		r.Albums = append(r.Albums, ar)
	}
	return r
}

func decode(r io.Reader) (snapshot, error) {
	br := bufio.NewReader(r)

	head := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(br, head); err != nil {
		return snapshot{}, fmt.Errorf("%w: read header: %v", errMalformed, err)
	}
	if string(head[:len(magic)]) != magic {
		return snapshot{}, fmt.Errorf("%w: bad magic %q", errMalformed, head[:len(magic)])
	}
	if v := head[len(magic)]; v != formatVersion {
		return snapshot{}, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, v, formatVersion)
	}

	var s snapshot
	var meta metaRecord
	seen := map[string]bool{}
	n := 0

	for {
		kind, payload, err := readRecord(br)
		if err != nil {
			return snapshot{}, fmt.Errorf("%w: record %d: %v", errMalformed, n, err)
		}

		switch {
		case n == 0 && kind != recordMeta:
			return snapshot{}, fmt.Errorf("%w: first record is %d, want meta", errMalformed, kind)
		case kind == recordMeta && n == 0:
			if err := json.Unmarshal(payload, &meta); err != nil {
				return snapshot{}, fmt.Errorf("%w: meta: %v", errMalformed, err)
			}
			s.tagTypes = meta.TagTypes
		case kind == recordUser:
			var ur userRecord
			if err := json.Unmarshal(payload, &ur); err != nil {
				return snapshot{}, fmt.Errorf("%w: user record %d: %v", errMalformed, n, err)
			}
			u, err := ur.restore()
			if err != nil {
				return snapshot{}, fmt.Errorf("%w: user %q: %v", errMalformed, ur.Name, err)
			}
			if seen[u.Name()] {
				return snapshot{}, fmt.Errorf("%w: user %q stored twice", errMalformed, u.Name())
			}
			seen[u.Name()] = true
			s.users = append(s.users, u)
		case kind == recordEnd:
			var er endRecord
			if err := json.Unmarshal(payload, &er); err != nil {
				return snapshot{}, fmt.Errorf("%w: end: %v", errMalformed, err)
			}
			if er.Records != n || meta.Users != len(s.users) {
				return snapshot{}, fmt.Errorf("%w: end record counts %d records, %d users; read %d, %d",
					errMalformed, er.Records, meta.Users, n, len(s.users))
			}
			return s, nil
		default:
			return snapshot{}, fmt.Errorf("%w: unexpected record kind %d at %d", errMalformed, kind, n)
		}
		n++
	}
}

func readRecord(br *bufio.Reader) (recordKind, []byte, error) {
	k, err := br.ReadByte()
	if err != nil {
		return 0, nil, fmt.Errorf("read kind: %w", err)
	}
	size, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, nil, fmt.Errorf("read length: %w", err)
	}
	if size > maxRecord {
		return 0, nil, fmt.Errorf("record length %d exceeds %d", size, maxRecord)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(br, payload); err != nil {
		return 0, nil, fmt.Errorf("read payload: %w", err)
	}
	return recordKind(k), payload, nil
}

func (r userRecord) restore() (*photos.User, error) {
	if photos.IsAdmin(r.Name) {
		return nil, fmt.Errorf("reserved username %q", r.Name)
	}
	u, err := photos.NewUser(r.Name, r.Password)
	if err != nil {
		return nil, err
	}

	table := make([]*photos.Photo, 0, len(r.Photos))
	paths := map[string]bool{}
	for _, pr := range r.Photos {
		if paths[pr.Path] {
			return nil, fmt.Errorf("photo %q stored twice", pr.Path)
		}
		paths[pr.Path] = true

		tags := make([]photos.Tag, 0, len(pr.Tags))
		for _, kv := range pr.Tags {
			t, err := photos.NewTag(kv[0], kv[1])
			if err != nil {
				return nil, fmt.Errorf("photo %q: %w", pr.Path, err)
			}
			tags = append(tags, t)
		}
		p, err := photos.RestorePhoto(pr.Path, time.Unix(pr.Taken, 0), pr.Caption, tags)
		if err != nil {
			return nil, err
		}
		table = append(table, p)
	}

	for _, ar := range r.Albums {
		a, err := photos.NewAlbum(ar.Name)
		if err != nil {
			return nil, err
		}
		for _, i := range ar.Photos {
			if i < 0 || i >= len(table) {
				return nil, fmt.Errorf("album %q: photo index %d out of range", ar.Name, i)
			}
			if !a.AddPhoto(table[i]) {
				return nil, fmt.Errorf("album %q: photo %q listed twice", ar.Name, table[i].Path())
			}
		}
		if !u.AddAlbum(a) {
			return nil, fmt.Errorf("album %q stored twice", ar.Name)
		}
	}
	return u, nil
}
