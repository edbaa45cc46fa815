// Package cartridge defines the saved game format. Cartridges are JSON files
// holding the members of a game, its rules and its base64 encoded assets.
package cartridge

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// FormatVersion is the newest format this package reads and writes.
const FormatVersion = 0

// ErrUnsupportedVersion is returned for cartridges written by a newer format.
var ErrUnsupportedVersion = errors.New("cartridge: unsupported format version")

// ImageString is a base64 encoded PNG without padding.
type ImageString string

// SoundString is base64 encoded audio without padding.
type SoundString string

// Music is the background track of a game.
type Music struct {
	Data   SoundString `json:"data"`
	Looped bool        `json:"looped"`
}

// AssetFilenames remembers which files the assets came from.
type AssetFilenames struct {
	Image  *string `json:"image"`
	Font   *string `json:"font"`
	Music  *string `json:"music"`
	Sounds *string `json:"sounds"`
}

// Member is a member as stored on disk.
type Member struct {
	Name     string             `json:"name"`
	Position core.Position      `json:"position"`
	Sprite   rules.Sprite       `json:"sprite"`
	Text     rules.Text         `json:"text"`
	TodoList []rules.SavedChore `json:"todo_list"`
}

// Cartridge is a complete saved game.
type Cartridge struct {
	FormatVersion  int                    `json:"format_version"`
	Members        []Member               `json:"members"`
	Published      bool                   `json:"published"`
	Length         rules.Length           `json:"length"`
	Size           rules.GameSize         `json:"size"`
	IntroText      IntroText              `json:"intro_text"`
	Font           ImageString            `json:"font"`
	Image          ImageString            `json:"image"`
	Music          *Music                 `json:"music"`
	AssetFilenames AssetFilenames         `json:"asset_filenames"`
	Sounds         map[string]SoundString `json:"sounds"`
}

// New returns a game holding only a background member.
func New(size rules.GameSize, image, font ImageString) Cartridge {
	return Cartridge{
		Members: []Member{{
			Name:     "Background",
			Position: size.Centre(),
			Text:     rules.Text{Colour: rules.Black},
			Sprite:   rules.Sprite{Index: 0, Size: size.Background()},
			TodoList: []rules.SavedChore{},
		}},
		Size:   size,
		Image:  image,
		Font:   font,
		Sounds: map[string]SoundString{},
	}
}

// Parse decodes a cartridge file.
func Parse(data []byte) (Cartridge, error) {
	var c Cartridge
	if err := json.Unmarshal(data, &c); err != nil {
		return Cartridge{}, fmt.Errorf("cartridge: cannot parse: %w", err)
	}
	if c.FormatVersion > FormatVersion {
		return Cartridge{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.FormatVersion)
	}
	if c.Sounds == nil {
		c.Sounds = map[string]SoundString{}
	}
	for i := range c.Members {
		if c.Members[i].TodoList == nil {
			c.Members[i].TodoList = []rules.SavedChore{}
		}
	}
	return c, nil
}

// Encode serialises the cartridge.
func (c Cartridge) Encode() ([]byte, error) {
	if c.Sounds == nil {
		c.Sounds = map[string]SoundString{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("cartridge: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports structural problems a game would trip over at runtime.
func (c Cartridge) Validate() error {
	if len(c.Members) == 0 {
		return errors.New("cartridge: no members")
	}
	seen := make(map[string]bool, len(c.Members))
	for i, m := range c.Members {
		if seen[m.Name] {
			return fmt.Errorf("cartridge: member %d: duplicate name %q", i, m.Name)
		}
		seen[m.Name] = true
		if len(m.TodoList) > rules.ChoreCount {
			return fmt.Errorf("cartridge: member %q: %d chores, at most %d", m.Name, len(m.TodoList), rules.ChoreCount)
		}
		for ci, chore := range m.TodoList {
			if len(chore.Questions) > rules.QuestionCount || len(chore.Demands) > rules.DemandCount {
				return fmt.Errorf("cartridge: member %q: chore %d has too many slots", m.Name, ci)
			}
		}
	}
	return nil
}

// IntroText is shown before a game starts, either one text or one per
// difficulty level.
type IntroText struct {
	Levels  [3]string
	Leveled bool
}

// SameIntro returns intro text shared by every difficulty.
func SameIntro(s string) IntroText {
	return IntroText{Levels: [3]string{s, s, s}}
}

// For returns the text for a difficulty level.
func (t IntroText) For(level int) string {
	if !t.Leveled || level < 0 || level >= len(t.Levels) {
		return t.Levels[0]
	}
	return t.Levels[level]
}

func (t IntroText) MarshalJSON() ([]byte, error) {
	if t.Leveled {
		return json.Marshal(map[string][3]string{"Levels": t.Levels})
	}
	return json.Marshal(map[string]string{"Same": t.Levels[0]})
}

func (t *IntroText) UnmarshalJSON(data []byte) error {
	var raw struct {
		Same   *string    `json:"Same"`
		Levels *[3]string `json:"Levels"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("intro text: %w", err)
	}
	switch {
	case raw.Levels != nil:
		*t = IntroText{Levels: *raw.Levels, Leveled: true}
	case raw.Same != nil:
		*t = SameIntro(*raw.Same)
	default:
		*t = IntroText{}
	}
	return nil
}
