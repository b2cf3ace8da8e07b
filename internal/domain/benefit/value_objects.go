package benefit

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName     = errors.New("benefit name must be between 1 and 200 characters")
	ErrInvalidCost     = errors.New("benefit cost cannot be negative")
	ErrInvalidImageURL = errors.New("image reference must be at most 500 characters")
	ErrInvalidStatus   = errors.New("invalid benefit status")
	ErrBenefitInactive = errors.New("benefit is inactive")

	ErrImageMissing     = errors.New("image file is empty")
	ErrImageTypeInvalid = errors.New("image type not allowed")
	ErrImageTooLarge    = errors.New("image exceeds the maximum size")
)

const (
	maxNameLength     = 200
	maxImageURLLength = 500

	// DefaultMaxImageBytes is 5MiB.
	DefaultMaxImageBytes int64 = 5 << 20
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

// Key is the case-insensitive form used for uniqueness checks.
func (n Name) Key() string { return strings.ToLower(n.value) }

type Cost struct {
	value int64
}

func NewCost(v int64) (Cost, error) {
	if v < 0 {
		return Cost{}, ErrInvalidCost
	}
	return Cost{value: v}, nil
}

func (c Cost) Value() int64 { return c.value }

type ImageURL struct {
	value string
}

func NewImageURL(s string) (ImageURL, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxImageURLLength {
		return ImageURL{}, ErrInvalidImageURL
	}
	return ImageURL{value: s}, nil
}

func (u ImageURL) Value() string { return u.value }

var allowedImageTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/jpg":  {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

// Image describes an upload before it reaches storage.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
}

// Validate checks the content type, that the extension agrees with it, and the size.
func (img Image) Validate(maxBytes int64) error {
	if img.Size <= 0 || img.Filename == "" {
		return ErrImageMissing
	}
	contentType := strings.ToLower(strings.TrimSpace(img.ContentType))
	exts, ok := allowedImageTypes[contentType]
	if !ok {
		return ErrImageTypeInvalid
	}
	ext := strings.ToLower(filepath.Ext(img.Filename))
	matched := false
	for _, e := range exts {
		if e == ext {
			matched = true
			break
		}
	}
	if !matched {
		return ErrImageTypeInvalid
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if img.Size > maxBytes {
		return ErrImageTooLarge
	}
	return nil
}

func (img Image) Extension() string {
	return strings.ToLower(filepath.Ext(img.Filename))
}

func AllowedImageTypes() []string {
	return []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}
}
