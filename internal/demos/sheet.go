package demos

import (
	"image"
	"image/color"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Sprite indexes painted on the demo sheet. They start on the tenth row of
// tiles, below the area the background sprite covers.
const (
	BallSprite = 9*rules.SpriteSheetWidth/16 + iota
	ButtonSprite
	LampSprite
)

var sheetColours = map[uint32]color.NRGBA{
	BallSprite:   {R: 0xe0, G: 0x3c, B: 0x31, A: 0xff},
	ButtonSprite: {R: 0x2f, G: 0x6f, B: 0xd6, A: 0xff},
	LampSprite:   {R: 0xf5, G: 0xc2, B: 0x18, A: 0xff},
}

// Sheet paints one filled 16 pixel tile per demo sprite. The ball is a disc,
// so its corners are transparent.
func Sheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, rules.SpriteSheetWidth, rules.SpriteSheetWidth))
	for index, c := range sheetColours {
		r := square(index).SheetSourceRect()
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if index == BallSprite && !inDisc(x-r.Min.X, y-r.Min.Y, r.Width()) {
					continue
				}
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func inDisc(x, y, size int) bool {
	// Doubled coordinates keep the centre on a pixel corner.
	dx, dy := 2*x+1-size, 2*y+1-size
	return dx*dx+dy*dy <= size*size
}

func encodedSheet() cartridge.ImageString {
	s, err := assets.EncodeImage(Sheet())
	if err != nil {
		// Encoding an in-memory NRGBA image does not fail.
		panic(err)
	}
	return s
}
