// Package assets decodes the images, font and music carried by a cartridge
// into the forms the engine queries.
package assets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/coll"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Assets holds the decoded sprite sheet and font of a game together with the
// strings they came from.
type Assets struct {
	Image       *image.NRGBA
	ImageString cartridge.ImageString
	Font        Metrics
	FontString  cartridge.ImageString
	MusicString *cartridge.SoundString
	MusicData   []byte
	Filenames   cartridge.AssetFilenames

	imageDirty bool
}

// Blank returns assets with an empty sprite sheet and the fallback font.
func Blank() *Assets {
	return &Assets{
		Image: image.NewNRGBA(image.Rect(0, 0, rules.SpriteSheetWidth, rules.SpriteSheetWidth)),
		Font:  FallbackMetrics(),
	}
}

// FromStrings decodes cartridge assets. An empty image gives a blank sheet and
// an empty font gives the fallback metrics.
func FromStrings(img, font cartridge.ImageString, music *cartridge.SoundString, filenames cartridge.AssetFilenames) (*Assets, error) {
	a := Blank()
	a.ImageString = img
	a.FontString = font
	a.Filenames = filenames

	if img != "" {
		sheet, err := DecodeImageString(img)
		if err != nil {
			return nil, fmt.Errorf("assets: image: %w", err)
		}
		a.Image = sheet
	}
	if font != "" {
		fontImage, err := DecodeImageString(font)
		if err != nil {
			return nil, fmt.Errorf("assets: font: %w", err)
		}
		if bf := ParseBitmapFont(fontImage); bf.CharHeight() > 0 {
			a.Font = bf
		}
	}
	if music != nil {
		data, err := decodeBase64(string(*music))
		if err != nil {
			return nil, fmt.Errorf("assets: music: %w", err)
		}
		s := *music
		a.MusicString = &s
		a.MusicData = data
	}
	return a, nil
}

// decodeBase64 accepts both padded and unpadded standard base64.
func decodeBase64(s string) ([]byte, error) {
	if data, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(s)
}

// EncodeBytes turns raw file bytes into a cartridge string.
func EncodeBytes(data []byte) string {
	return base64.RawStdEncoding.EncodeToString(data)
}

// DecodeImageString decodes a base64 PNG into an NRGBA image.
func DecodeImageString(s cartridge.ImageString) (*image.NRGBA, error) {
	data, err := decodeBase64(string(s))
	if err != nil {
		return nil, err
	}
	return DecodePNG(data)
}

// DecodePNG decodes PNG bytes into an NRGBA image anchored at the origin.
func DecodePNG(data []byte) (*image.NRGBA, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return toNRGBA(src), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// EncodeImage returns the sheet as a cartridge string.
func EncodeImage(img image.Image) (cartridge.ImageString, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return cartridge.ImageString(EncodeBytes(buf.Bytes())), nil
}

// Grid exposes the sheet's alpha channel for collision checks.
func (a *Assets) Grid() coll.Grid {
	return coll.AlphaGrid{Img: a.Image}
}

// Pixel returns the sheet colour at p, or transparent outside the sheet.
func (a *Assets) Pixel(p core.Position) color.NRGBA {
	if !image.Pt(p.X, p.Y).In(a.Image.Bounds()) {
		return color.NRGBA{}
	}
	return a.Image.NRGBAAt(p.X, p.Y)
}

// SetPixel writes one sheet pixel. Writes outside the sheet are dropped.
func (a *Assets) SetPixel(p core.Position, c color.NRGBA) {
	if !image.Pt(p.X, p.Y).In(a.Image.Bounds()) {
		return
	}
	a.Image.SetNRGBA(p.X, p.Y, c)
	a.imageDirty = true
}

// SavedImage returns the image string to store, re-encoding the sheet when
// pixels were edited since it was loaded.
func (a *Assets) SavedImage() (cartridge.ImageString, error) {
	if !a.imageDirty {
		return a.ImageString, nil
	}
	s, err := EncodeImage(a.Image)
	if err != nil {
		return "", fmt.Errorf("assets: cannot encode image: %w", err)
	}
	a.ImageString = s
	a.imageDirty = false
	return s, nil
}

// SetImage replaces the sprite sheet.
func (a *Assets) SetImage(img *image.NRGBA, s cartridge.ImageString) {
	a.Image = img
	a.ImageString = s
	a.imageDirty = false
}

// SetMusic replaces the background music.
func (a *Assets) SetMusic(data []byte) {
	s := cartridge.SoundString(EncodeBytes(data))
	a.MusicString = &s
	a.MusicData = append([]byte(nil), data...)
}

// Clone returns assets that share nothing mutable with a.
func (a *Assets) Clone() *Assets {
	c := *a
	c.Image = image.NewNRGBA(a.Image.Bounds())
	copy(c.Image.Pix, a.Image.Pix)
	c.MusicData = append([]byte(nil), a.MusicData...)
	if a.MusicString != nil {
		s := *a.MusicString
		c.MusicString = &s
	}
	return &c
}
