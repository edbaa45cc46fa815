// Package game holds the runtime state of a playable game: its members, their
// motion and animation, and the conversion to and from saved cartridges.
package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Member texts the editor and host treat specially.
const (
	ScreenName      = "{Screen}"
	ChooseAreaName  = "{Choose Area}"
	ChoosePointName = "{Choose Point}"
	PlayScreenName  = "{Play Screen}"
	MusicMakerName  = "{Music Maker}"
	SpriteSheetName = "{Sprite Sheet}"
	EditSpriteName  = "{Edit Sprite}"
)

// Asset defaults and timings shared by the editor and host.
const (
	DefaultImageFilename = "green.png"
	DefaultFontFilename  = "pixolletta.png"
	IntroFontFilename    = "littleguy.png"
	FadeLen              = 60
	InitialScale         = 4
	SubgameEndFrame      = 150
)

// IsScreenMemberName reports whether a member text marks a screen that shows
// the subgame.
func IsScreenMemberName(name string) bool {
	switch name {
	case ScreenName, ChooseAreaName, ChoosePointName, PlayScreenName:
		return true
	}
	return false
}

// Member is a named actor with its rules and runtime state.
type Member struct {
	Name          string
	Position      mgl32.Vec2
	Switch        rules.Switch
	AppliedSwitch rules.Switch
	Sprite        rules.Sprite
	Motion        ActiveMotion
	Animation     anim.Animation[rules.Sprite]
	Text          rules.Text
	TodoList      []rules.Chore
}

// NewMember creates a stopped member with an empty todo list.
func NewMember(name string, position mgl32.Vec2, sprite rules.Sprite, text rules.Text) Member {
	return Member{
		Name:     name,
		Position: position,
		Sprite:   sprite,
		Motion:   Stop{},
		Text:     text,
		TodoList: rules.DefaultTodoList(),
	}
}

// Clone returns a member that shares no slices with m.
func (m Member) Clone() Member {
	c := m
	c.Animation = m.Animation.Clone()
	c.TodoList = rules.CloneTodoList(m.TodoList)
	return c
}

// PixelPosition returns the position truncated to whole pixels.
func (m Member) PixelPosition() core.Position {
	return core.PosFromVec(m.Position)
}

// ChoreID names one chore of one member.
type ChoreID struct {
	Member int
	Chore  int
}

// QuestionID names one question slot.
type QuestionID struct {
	Member   int
	Chore    int
	Question int
}

// ChoreID returns the chore the question belongs to.
func (id QuestionID) ChoreID() ChoreID {
	return ChoreID{Member: id.Member, Chore: id.Chore}
}

// DemandID names one demand slot.
type DemandID struct {
	Member int
	Chore  int
	Demand int
}

// ChoreID returns the chore the demand belongs to.
func (id DemandID) ChoreID() ChoreID {
	return ChoreID{Member: id.Member, Chore: id.Chore}
}

// SoundQueue collects the sounds to play this tick. Once stopped it ignores
// further sounds.
type SoundQueue struct {
	Sounds  map[string]struct{}
	Stopped bool
}

// NewSoundQueue returns an empty ready queue.
func NewSoundQueue() *SoundQueue {
	return &SoundQueue{Sounds: make(map[string]struct{})}
}

// Play queues a sound unless the queue was stopped.
func (q *SoundQueue) Play(name string) {
	if q.Stopped {
		return
	}
	if q.Sounds == nil {
		q.Sounds = make(map[string]struct{})
	}
	q.Sounds[name] = struct{}{}
}

// Stop drops the queued sounds and ignores new ones.
func (q *SoundQueue) Stop() {
	q.Sounds = nil
	q.Stopped = true
}

// Names returns the queued sounds in sorted order.
func (q *SoundQueue) Names() []string {
	return slices.Sorted(maps.Keys(q.Sounds))
}

// Game is a running game.
type Game struct {
	Members     []Member
	Assets      *assets.Assets
	Size        rules.GameSize
	Length      rules.Length
	WinStatus   rules.WinStatus
	FrameNumber int
	IntroText   cartridge.IntroText
	MusicLooped bool
	Sounds      map[string]cartridge.SoundString
	Rng         *rng.SeededRng

	// Triggered holds the random time questions that already fired.
	Triggered map[QuestionID]struct{}
}

// FromCartridge builds a game ready to play its first frame.
func FromCartridge(c cartridge.Cartridge, r *rng.SeededRng) (*Game, error) {
	var music *cartridge.SoundString
	looped := false
	if c.Music != nil {
		data := c.Music.Data
		music = &data
		looped = c.Music.Looped
	}
	a, err := assets.FromStrings(c.Image, c.Font, music, c.AssetFilenames)
	if err != nil {
		return nil, fmt.Errorf("game: cannot load assets: %w", err)
	}

	members := make([]Member, 0, len(c.Members))
	for _, sm := range c.Members {
		members = append(members, Member{
			Name:     sm.Name,
			Position: sm.Position.Vec(),
			Sprite:   sm.Sprite,
			Motion:   Stop{},
			Text:     sm.Text,
			TodoList: rules.PadTodoList(sm.TodoList),
		})
	}

	return &Game{
		Members:     members,
		Assets:      a,
		Size:        c.Size,
		Length:      c.Length,
		WinStatus:   rules.NotYetWon,
		IntroText:   c.IntroText,
		MusicLooped: looped,
		Sounds:      maps.Clone(c.Sounds),
		Rng:         r,
		Triggered:   make(map[QuestionID]struct{}),
	}, nil
}

// ToCartridge saves the game. Runtime state such as motion, switches and the
// frame counter is not stored.
func (g *Game) ToCartridge() (cartridge.Cartridge, error) {
	img, err := g.Assets.SavedImage()
	if err != nil {
		return cartridge.Cartridge{}, fmt.Errorf("game: cannot save: %w", err)
	}

	members := make([]cartridge.Member, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, cartridge.Member{
			Name:     m.Name,
			Position: m.PixelPosition(),
			Sprite:   m.Sprite,
			Text:     m.Text,
			TodoList: rules.TrimTodoList(m.TodoList),
		})
	}

	var music *cartridge.Music
	if g.Assets.MusicString != nil {
		music = &cartridge.Music{Data: *g.Assets.MusicString, Looped: g.MusicLooped}
	}
	sounds := maps.Clone(g.Sounds)
	if sounds == nil {
		sounds = make(map[string]cartridge.SoundString)
	}

	return cartridge.Cartridge{
		FormatVersion:  cartridge.FormatVersion,
		Members:        members,
		Published:      true,
		Length:         g.Length,
		Size:           g.Size,
		IntroText:      g.IntroText,
		Font:           g.Assets.FontString,
		Image:          img,
		Music:          music,
		AssetFilenames: g.Assets.Filenames,
		Sounds:         sounds,
	}, nil
}

// Clone returns a deep copy, including the rng state.
func (g *Game) Clone() *Game {
	c := *g
	c.Members = make([]Member, len(g.Members))
	for i, m := range g.Members {
		c.Members[i] = m.Clone()
	}
	c.Assets = g.Assets.Clone()
	c.Sounds = maps.Clone(g.Sounds)
	c.Rng = g.Rng.Clone()
	c.Triggered = maps.Clone(g.Triggered)
	if c.Triggered == nil {
		c.Triggered = make(map[QuestionID]struct{})
	}
	return &c
}

// Restart rewinds the frame counter and win status, keeping members.
func (g *Game) Restart() {
	g.FrameNumber = 0
	g.WinStatus = rules.NotYetWon
	clear(g.Triggered)
}

// MemberIndex returns the index of the member with the given name.
func (g *Game) MemberIndex(name string) (int, bool) {
	return MemberIndex(g.Members, name)
}

// MemberIndex returns the index of the first member called name.
func MemberIndex(members []Member, name string) (int, bool) {
	for i := range members {
		if members[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// ScreenPosition is where the subgame is drawn: the first play screen or
// screen member, or the outer centre.
func (g *Game) ScreenPosition() mgl32.Vec2 {
	for _, m := range g.Members {
		if m.Text.Contents == PlayScreenName || m.Text.Contents == ScreenName {
			return m.Position
		}
	}
	return rules.OuterCentre.Vec()
}

// MusicMakerMember returns the member that hosts the music maker.
func (g *Game) MusicMakerMember() (*Member, bool) {
	return g.memberWithText(MusicMakerName)
}

// HasEditableScreen reports whether typed text edits the subgame.
func (g *Game) HasEditableScreen() bool {
	_, ok := g.memberWithText(ScreenName)
	return ok
}

func (g *Game) memberWithText(text string) (*Member, bool) {
	for i := range g.Members {
		if g.Members[i].Text.Contents == text {
			return &g.Members[i], true
		}
	}
	return nil, false
}

// RenameMember renames members[index] and updates every rule that refers to
// the old name.
func RenameMember(members []Member, index int, from, to string) {
	members[index].Name = to
	for i := range members {
		rules.RenameInTodoList(members[i].TodoList, from, to)
	}
}
