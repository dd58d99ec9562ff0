package assets

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader decodes image handles from an asset directory and caches the
// result. Missing files are cached as nil so the renderer falls back to a
// placeholder without retrying every frame.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage returns the decoded image for path.
func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		if img == nil {
			return nil, fmt.Errorf("image %s unavailable", path)
		}
		return img, nil
	}
	if l.fsys == nil {
		l.cache[path] = nil
		return nil, fmt.Errorf("no asset directory for %s", path)
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		l.cache[path] = nil
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		l.cache[path] = nil
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Image is LoadImage without the error; nil means draw a placeholder.
func (l *ImageLoader) Image(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, _ := l.LoadImage(path)
	return img
}
