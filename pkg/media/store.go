package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
)

var ErrInvalidImage = errors.New("invalid image")

var formats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/jpg":  imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

var extensions = map[imaging.Format]string{
	imaging.JPEG: ".jpg",
	imaging.PNG:  ".png",
	imaging.GIF:  ".gif",
}

// Store keeps recipe images as files under a directory served at a URL prefix.
type Store struct {
	dir     string
	prefix  string
	maxSide int
	logger  *zap.Logger
}

func NewStore(conf configs.Media, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(conf.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}

	prefix := conf.URLPrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Store{dir: conf.Dir, prefix: prefix, maxSide: conf.MaxSide, logger: logger}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) URLPrefix() string {
	return s.prefix
}

// Save decodes a base64 data URI such as "data:image/png;base64,...", scales
// the image down to fit the configured bounds and writes it under a fresh
// name. It returns the URL of the stored file.
func (s *Store) Save(_ context.Context, data string) (string, error) {
	format, payload, err := parseDataURI(data)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(payload), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidImage, err.Error())
	}

	img = s.fit(img)

	name := uuid.NewString() + extensions[format]

	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer file.Close()

	if err = imaging.Encode(file, img, format); err != nil {
		_ = os.Remove(file.Name())

		return "", fmt.Errorf("encode image: %w", err)
	}

	s.logger.Debug("stored image", zap.String("name", name), zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))

	return s.prefix + name, nil
}

// Delete removes a stored image by the URL Save returned. Unknown or
// foreign references are ignored.
func (s *Store) Delete(_ context.Context, ref string) error {
	name, found := strings.CutPrefix(ref, s.prefix)
	if !found || name == "" || strings.ContainsAny(name, `/\`) {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *Store) fit(img image.Image) image.Image {
	bounds := img.Bounds()
	if s.maxSide < 1 || (bounds.Dx() <= s.maxSide && bounds.Dy() <= s.maxSide) {
		return img
	}

	return imaging.Fit(img, s.maxSide, s.maxSide, imaging.Lanczos)
}

func parseDataURI(data string) (imaging.Format, []byte, error) {
	rest, found := strings.CutPrefix(data, "data:")
	if !found {
		return 0, nil, fmt.Errorf("%w: expected a base64 data URI", ErrInvalidImage)
	}

	meta, encoded, found := strings.Cut(rest, ",")
	if !found {
		return 0, nil, fmt.Errorf("%w: malformed data URI", ErrInvalidImage)
	}

	mimeType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return 0, nil, fmt.Errorf("%w: data URI must be base64 encoded", ErrInvalidImage)
	}

	format, known := formats[strings.ToLower(mimeType)]
	if !known {
		return 0, nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, mimeType)
	}

	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrInvalidImage, err.Error())
	}

	return format, payload, nil
}
