package scribe

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	uploadField   = "file1"
	maxImageWidth = 1600
	jpegQuality   = 85
)

// sanitizeFilename derives a safe stored name from a client-supplied one.
// Path separators and dot segments are stripped so the result can never
// escape the upload directory; remaining segments are joined with
// underscores and characters outside [A-Za-z0-9._-] are replaced.
// An unsalvageable name sanitizes to "".
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	var parts []string
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		parts = append(parts, seg)
	}
	joined := strings.Join(parts, "_")

	var b strings.Builder
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}

// saveUpload writes the uploaded file into dir under its sanitized name and
// returns that name. A file with the same name is silently overwritten.
// JPEG and PNG images wider than maxImageWidth are downscaled before being
// written; everything else is stored byte-for-byte.
func saveUpload(file *multipart.FileHeader, dir string) (string, error) {
	name := sanitizeFilename(file.Filename)
	if name == "" {
		return "", fmt.Errorf("filename %q sanitizes to nothing", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		if scaled, ok := downscaleImage(data, strings.ToLower(filepath.Ext(name))); ok {
			data = scaled
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// downscaleImage resizes an image to maxImageWidth if it is wider, keeping
// the aspect ratio and the original encoding. It reports false when the data
// does not decode or needs no resize, in which case the caller stores the
// original bytes.
func downscaleImage(data []byte, ext string) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageWidth {
		return nil, false
	}

	newH := h * maxImageWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch ext {
	case ".png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
