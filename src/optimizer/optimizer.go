package optimizer

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const jpegQuality = 80

type fitMode int

const (
	fitInside fitMode = iota // scale down to fit, never upscale
	fitCover                 // crop to exactly fill
)

// Profile bounds an image by usage. Covers are cropped to a fixed frame;
// section and gallery images only ever scale down.
type Profile struct {
	Width  int
	Height int
	Fit    fitMode
}

var profiles = map[string]Profile{
	"cover":   {Width: 1600, Height: 900, Fit: fitCover},
	"section": {Width: 1920, Height: 1080, Fit: fitInside},
	"gallery": {Width: 1600, Height: 1200, Fit: fitInside},
}

// profileFor classifies a file by path convention.
func profileFor(path string) string {
	slashed := filepath.ToSlash(path)
	switch {
	case strings.Contains(filepath.Base(slashed), "cover."):
		return "cover"
	case strings.Contains(slashed, "/sections/"):
		return "section"
	case strings.Contains(slashed, "/gallery/"):
		return "gallery"
	default:
		return "section"
	}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Stats summarizes one optimizer run.
type Stats struct {
	Optimized int
	Skipped   int
	Failed    int
}

// Optimizer recompresses stored project images in place. Unchanged files are
// skipped via the persisted cache, so repeat runs are cheap and idempotent.
type Optimizer struct {
	root  string
	cache *Cache
}

func New(root, cachePath string) *Optimizer {
	return &Optimizer{root: root, cache: LoadCache(cachePath)}
}

// Run walks the asset root and optimizes every image that changed since the
// last run. Per-file failures are logged and counted but do not abort the
// batch; failed files stay unmarked and are retried next run.
func (o *Optimizer) Run() (Stats, error) {
	var stats Stats

	if _, err := os.Stat(o.root); os.IsNotExist(err) {
		return stats, nil
	}

	var files []string
	err := filepath.WalkDir(o.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && imageExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", o.root, err)
	}

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			abs = file
		}
		info, err := os.Stat(file)
		if err != nil {
			log.Printf("Skipping %s: %v", file, err)
			stats.Failed++
			continue
		}
		if entry, ok := o.cache.Get(abs); ok && entry.LastModified >= info.ModTime().UnixMilli() {
			stats.Skipped++
			continue
		}

		entry, err := o.optimizeFile(file, info.Size())
		if err != nil {
			log.Printf("Error optimizing %s: %v", file, err)
			stats.Failed++
			continue
		}
		if err := o.cache.Put(abs, entry); err != nil {
			log.Printf("Error saving optimization cache for %s: %v", file, err)
		}
		stats.Optimized++
	}

	return stats, nil
}

func (o *Optimizer) optimizeFile(path string, originalSize int64) (CacheEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return CacheEntry{}, err
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return CacheEntry{}, fmt.Errorf("decode: %w", err)
	}

	profile := profiles[profileFor(path)]
	resized := resize(img, profile)

	// PNG stays PNG, everything else is written back as JPEG.
	var buf bytes.Buffer
	if format == "png" {
		err = imaging.Encode(&buf, resized, imaging.PNG)
	} else {
		err = imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		return CacheEntry{}, fmt.Errorf("encode: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return CacheEntry{}, fmt.Errorf("write: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return CacheEntry{}, err
	}

	bounds := resized.Bounds()
	return CacheEntry{
		LastModified: info.ModTime().UnixMilli(),
		Size:         int64(buf.Len()),
		OriginalSize: originalSize,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}, nil
}

func resize(img image.Image, profile Profile) image.Image {
	bounds := img.Bounds()
	switch profile.Fit {
	case fitCover:
		// Never enlarge; small covers keep their native size.
		if bounds.Dx() < profile.Width || bounds.Dy() < profile.Height {
			return img
		}
		return imaging.Fill(img, profile.Width, profile.Height, imaging.Center, imaging.Lanczos)
	default:
		if bounds.Dx() <= profile.Width && bounds.Dy() <= profile.Height {
			return img
		}
		return imaging.Fit(img, profile.Width, profile.Height, imaging.Lanczos)
	}
}
