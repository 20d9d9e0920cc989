package host

import "github.com/alnah/go-themekit"

// Query is a fixed request description.
type Query struct {
	Singular    bool
	ThumbnailID int
}

func (q Query) IsSingular() bool     { return q.Singular }
func (q Query) PostThumbnailID() int { return q.ThumbnailID }

// Media is an attachment store keyed by id, then size name.
type Media struct {
	images map[int]map[string]themekit.Image
}

// NewMedia creates an empty store.
func NewMedia() *Media {
	return &Media{images: make(map[int]map[string]themekit.Image)}
}

// Add stores img for attachment id at size.
func (m *Media) Add(id int, size string, img themekit.Image) {
	if m.images[id] == nil {
		m.images[id] = make(map[string]themekit.Image)
	}
	m.images[id][size] = img
}

// AttachmentImage returns the image for id at size, falling back to the
// full size.
func (m *Media) AttachmentImage(id int, size string) (themekit.Image, bool) {
	sizes, ok := m.images[id]
	if !ok {
		return themekit.Image{}, false
	}
	if img, ok := sizes[size]; ok {
		return img, true
	}
	img, ok := sizes["full"]
	return img, ok
}

// Compile-time interface checks.
var (
	_ themekit.Query        = Query{}
	_ themekit.MediaLibrary = (*Media)(nil)
)
