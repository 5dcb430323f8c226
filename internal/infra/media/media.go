package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

var ErrInvalidImage = errors.New("invalid image")

const (
	webpQuality = 80

	// MaxPixels bounds the decoded size of any input image.
	MaxPixels = 40_000_000
)

// Decode reads PNG, JPEG, GIF and WebP images. Headers are checked against
// MaxPixels before any pixel data is allocated.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}

	w, h, err := dimensions(data)
	if err != nil || w <= 0 || h <= 0 || w > MaxPixels/h {
		return nil, ErrInvalidImage
	}

	if ContentType(data) == "image/webp" {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, ErrInvalidImage
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage
	}
	return img, nil
}

func dimensions(data []byte) (int, int, error) {
	if ContentType(data) == "image/webp" {
		w, h, _, err := webp.GetInfo(data)
		return w, h, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// DecodeBase64 accepts raw base64 or a data URL.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, ErrInvalidImage
		}
		s = s[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidImage
	}
	return data, nil
}

// ContentType sniffs the MIME type from the first bytes.
func ContentType(data []byte) string {
	ct := http.DetectContentType(data)
	return strings.Split(ct, ";")[0]
}

// Extension maps an image MIME type to a file extension.
func Extension(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	return "bin"
}

// ResizeCover scales src to fill w x h and crops the overflow around the
// centre.
func ResizeCover(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()

	crop := b
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := b.Min.X + (sw-cw)/2
		crop = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	} else if sw*h < sh*w {
		ch := sw * h / w
		y0 := b.Min.Y + (sh-ch)/2
		crop = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)
	return dst
}

// FullMask is a fully transparent w x h image: every pixel may be edited.
func FullMask(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m, m.Bounds(), image.NewUniform(color.NRGBA{}), image.Point{}, draw.Src)
	return m
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EncodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWebP decodes any supported upload and re-encodes it as WebP.
func ToWebP(data []byte) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return EncodeWebP(img)
}
