package rules

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/game-maker/internal/core"
)

// Screen and sheet dimensions in pixels.
const (
	InnerWidth       = 256
	InnerHeight      = 144
	OuterWidth       = 384
	OuterHeight      = 216
	SpriteSheetWidth = 512
)

var (
	InnerSize   = core.NewSize(InnerWidth, InnerHeight)
	OuterSize   = core.NewSize(OuterWidth, OuterHeight)
	InnerCentre = InnerSize.Centre()
	OuterCentre = OuterSize.Centre()
)

// SizeKind is the size class of a sprite.
type SizeKind int

const (
	SizeEmpty SizeKind = iota
	SizeSquare
	SizeInnerBg
	SizeOuterBg
)

var sizeKindNames = []string{"Empty", "Square", "InnerBg", "OuterBg"}

func (k SizeKind) String() string { return core.EnumName(k, sizeKindNames) }

// SpriteSize is a size class plus the side length for square sprites.
type SpriteSize struct {
	Kind SizeKind
	N    uint32
}

var (
	EmptySize   = SpriteSize{Kind: SizeEmpty}
	InnerBgSize = SpriteSize{Kind: SizeInnerBg}
	OuterBgSize = SpriteSize{Kind: SizeOuterBg}
)

// SquareSize returns a square sprite size of side n.
func SquareSize(n uint32) SpriteSize {
	return SpriteSize{Kind: SizeSquare, N: n}
}

// String returns the size class name without the side length.
func (s SpriteSize) String() string { return s.Kind.String() }

// ParseSpriteSize parses a size class name. Square sizes get n as their side.
func ParseSpriteSize(name string, n uint32) (SpriteSize, error) {
	kind, err := core.ParseEnum[SizeKind](name, sizeKindNames)
	if err != nil {
		return EmptySize, err
	}
	if kind == SizeSquare {
		return SquareSize(n), nil
	}
	return SpriteSize{Kind: kind}, nil
}

func (s SpriteSize) MarshalJSON() ([]byte, error) {
	if s.Kind == SizeSquare {
		return json.Marshal(map[string]uint32{"Square": s.N})
	}
	return json.Marshal(s.Kind.String())
}

func (s *SpriteSize) UnmarshalJSON(data []byte) error {
	name, payload, err := splitVariant(data)
	if err != nil {
		return fmt.Errorf("sprite size: %w", err)
	}
	var n uint32
	if name == "Square" {
		if err := json.Unmarshal(payload, &n); err != nil {
			return fmt.Errorf("sprite size: %w", err)
		}
	}
	v, err := ParseSpriteSize(name, n)
	if err != nil {
		return fmt.Errorf("sprite size: %w", err)
	}
	*s = v
	return nil
}

// Pixels returns the size of a sprite of this class.
func (s SpriteSize) Pixels() core.Size {
	switch s.Kind {
	case SizeSquare:
		return core.Square(int(s.N))
	case SizeInnerBg:
		return InnerSize
	case SizeOuterBg:
		return OuterSize
	default:
		return core.Size{}
	}
}

// PageWidth is the width of the sheet row sprites of this class wrap at.
func (s SpriteSize) PageWidth() int {
	if s.Kind == SizeOuterBg {
		return OuterWidth
	}
	return SpriteSheetWidth
}

// PerSheet is how many sprites of this class fit on the sheet.
func (s SpriteSize) PerSheet() int {
	switch s.Kind {
	case SizeOuterBg:
		return 2
	case SizeInnerBg:
		return 6
	case SizeSquare:
		if s.N == 0 {
			return 0
		}
		n := SpriteSheetWidth / int(s.N)
		return n * n
	default:
		return 0
	}
}

// Sprite picks one cell of the sprite sheet.
type Sprite struct {
	Index uint32     `json:"index"`
	Size  SpriteSize `json:"size"`
}

// NoSprite is the empty sprite; members with it are drawn as text.
func NoSprite() Sprite {
	return Sprite{Size: EmptySize}
}

// IsSquare reports whether the sprite is a square tile.
func (s Sprite) IsSquare() bool { return s.Size.Kind == SizeSquare }

// IsEmpty reports whether the sprite draws nothing.
func (s Sprite) IsEmpty() bool { return s.Size.Kind == SizeEmpty }

// PositionInSheet returns the top left corner of the sprite on the sheet.
func (s Sprite) PositionInSheet() core.Position {
	size := s.Size.Pixels()
	page := s.Size.PageWidth()
	offset := size.W * int(s.Index)
	return core.Pos(offset%page, offset/page*size.H)
}

// SheetSourceRect returns the sheet rectangle the sprite is cut from.
func (s Sprite) SheetSourceRect() core.Rect {
	return core.FromTopLeft(s.PositionInSheet(), s.Size.Pixels())
}

func (s Sprite) String() string {
	if s.IsSquare() {
		return fmt.Sprintf("%s %d #%d", s.Size, s.Size.N, s.Index)
	}
	return fmt.Sprintf("%s #%d", s.Size, s.Index)
}
