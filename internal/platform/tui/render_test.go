package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func testGame(members ...game.Member) *game.Game {
	return &game.Game{Members: members, Assets: assets.Blank()}
}

func TestDrawGame(t *testing.T) {
	g := testGame(
		game.NewMember("Box", mgl32.Vec2{40, 40}, rules.Sprite{Index: 1, Size: rules.SquareSize(16)}, rules.PlainText("")),
		game.NewMember("Label", mgl32.Vec2{100, 20}, rules.NoSprite(), rules.PlainText("Hi")),
		game.NewMember("Screen", mgl32.Vec2{60, 60}, rules.NoSprite(), rules.PlainText(game.ScreenName)),
	)
	red := color.NRGBA{R: 255, A: 255}
	for y := 0; y < 16; y++ {
		for x := 16; x < 32; x++ {
			g.Assets.SetPixel(core.Pos(x, y), red)
		}
	}

	s := core.NewScreen(64, 18, 4, 8)
	DrawGame(s, g, core.Position{})

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"sprite top left", 8, 4, solidGlyph},
		{"sprite bottom right", 11, 5, solidGlyph},
		{"left of sprite", 7, 4, ' '},
		{"text start", 24, 2, 'H'},
		{"text end", 25, 2, 'i'},
		{"screen marker hidden", 15, 7, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetCell(tt.x, tt.y).Rune; got != tt.expected {
				t.Errorf("got %q at (%d, %d), expected %q", got, tt.x, tt.y, tt.expected)
			}
		})
	}

	if got, expected := s.GetCell(8, 4).Color, core.ColorFromRGB(1, 0, 0, 1); got != expected {
		t.Errorf("got sprite colour %d, expected %d", got, expected)
	}
}

func TestDrawGameSkipsTransparentPixels(t *testing.T) {
	g := testGame(game.NewMember("Ghost", mgl32.Vec2{40, 40}, rules.Sprite{Index: 1, Size: rules.SquareSize(16)}, rules.PlainText("")))
	s := core.NewScreen(64, 18, 4, 8)
	DrawGame(s, g, core.Position{})

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("expected an empty screen, got:\n%s", s.String())
	}
}

func TestInnerOrigin(t *testing.T) {
	outer := testGame(game.NewMember("Screen", mgl32.Vec2{200, 100}, rules.NoSprite(), rules.PlainText(game.ScreenName)))
	outer.Size = rules.Big
	sub := testGame()
	sub.Size = rules.Small

	if got, expected := InnerOrigin(outer, sub), core.Pos(72, 28); got != expected {
		t.Errorf("got origin %v, expected %v", got, expected)
	}
	if !ShowsSubgame(outer) {
		t.Error("expected the outer game to show the subgame")
	}
	if ShowsSubgame(sub) {
		t.Error("a game without a screen member does not show a subgame")
	}
	if got := OuterSize(outer); got != rules.OuterSize {
		t.Errorf("got size %v, expected %v", got, rules.OuterSize)
	}
}

func TestPlayStatus(t *testing.T) {
	tests := []struct {
		status   rules.WinStatus
		expected string
	}{
		{rules.NotYetWon, "Unfinished"},
		{rules.NotYetLost, "Unfinished"},
		{rules.JustWon, "Won"},
		{rules.Won, "Won"},
		{rules.JustLost, "Lost"},
		{rules.Lost, "Lost"},
	}
	for _, tt := range tests {
		if got := PlayStatus(tt.status); got != tt.expected {
			t.Errorf("PlayStatus(%v): got %q, expected %q", tt.status, got, tt.expected)
		}
	}
}

func TestStatusAudio(t *testing.T) {
	a := &StatusAudio{}
	if a.Status() != "" {
		t.Errorf("got %q, expected an empty status", a.Status())
	}
	a.PlaySounds([]string{"beep", "boop"})
	a.PlayMusic([]byte{1})
	a.PauseMusic()
	if got, expected := a.Status(), "♪ beep boop  music paused"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	a.StopSounds()
	a.StopMusic()
	if a.Status() != "" {
		t.Errorf("got %q, expected an empty status", a.Status())
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		sx, sy     int
		expX, expY int
	}{
		{"fits", 100, 40, 4, 8, 4, 8},
		{"narrow", 60, 40, 4, 8, 7, 8},
		{"short", 100, 20, 4, 8, 4, 13},
		{"zero scale", 400, 300, 0, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := FitScale(rules.OuterSize, tt.w, tt.h, tt.sx, tt.sy)
			if x != tt.expX || y != tt.expY {
				t.Errorf("got %dx%d, expected %dx%d", x, y, tt.expX, tt.expY)
			}
		})
	}
}
