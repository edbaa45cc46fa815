package meta

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/engine"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/library"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// applyActions carries out menu actions in the order the rules asked for
// them. Quit stops at once.
func (m *Metagame) applyActions(actions []engine.Action) (Outcome, error) {
	for _, a := range actions {
		m.Log.Debug("menu action", "action", a.String())
		if a.Kind == engine.ActionQuit {
			return Quit, nil
		}
		if err := m.applyAction(a); err != nil {
			return Continue, fmt.Errorf("meta: %s: %w", a, err)
		}
	}
	return Continue, nil
}

func (m *Metagame) collection() string {
	return m.Env.Context.Text(env.Collection)
}

func (m *Metagame) link(name string) nav.Link {
	return nav.Link{Collection: m.collection(), Game: name}
}

func (m *Metagame) applyAction(a engine.Action) error {
	ctx := m.Env.Context
	switch a.Kind {
	case engine.ActionPlay:
		m.play()
	case engine.ActionPause:
		m.pause()
	case engine.ActionStop:
		m.stop()

	case engine.ActionMoveToGame:
		m.Nav.MoveTo(m.link(a.Name))
	case engine.ActionFadeToGame:
		m.Transition = newTransition(FadeIn, m.Game.Clone())
		m.Nav.MoveTo(m.link(a.Name))
	case engine.ActionFadeOut:
		l := m.Nav.Back(m.collection())
		g, err := m.Load(l)
		if err != nil {
			return err
		}
		m.Game = g
		m.Transition = newTransition(FadeOut, g.Clone())
		m.Audio.PlayMusic(g.Assets.MusicData)
	case engine.ActionBackInQueue:
		m.Nav.Back(m.collection())
	case engine.ActionNextInQueue:
		if _, looped := m.Nav.Next(m.collection()); looped {
			m.Log.Debug("looping back around the game queue")
		}
	case engine.ActionAddToQueue:
		m.Nav.Add(m.link(a.Name))
	case engine.ActionResetQueue:
		m.Nav.Reset()

	case engine.ActionNew:
		return m.newGame()
	case engine.ActionLoad:
		return m.loadGame()
	case engine.ActionSave:
		return m.Save()
	case engine.ActionSetImageFile:
		return m.setImageFile(ctx.Text(env.ImageFileName))
	case engine.ActionSetMusicFile:
		return m.setMusicFile(ctx.Text(env.MusicFileName))
	case engine.ActionPreviewMusic:
		data, err := m.asset(library.Music, ctx.Text(env.MusicFileName))
		if err != nil {
			return err
		}
		m.Audio.PlayMusic(data)
	case engine.ActionStopMusic:
		m.Audio.StopMusic()
	}
	return nil
}

// play starts the edited game. The copy kept in the arena is the game as it
// was before playing, so Stop can bring it back.
func (m *Metagame) play() {
	e := m.Editor
	switch {
	case e.HasPausedCopy():
		e.InnerCopy = e.PausedCopy
		e.PausedCopy = uuid.Nil
	case e.HasInnerCopy():
		if saved, ok := m.Copies.Take(e.InnerCopy); ok {
			m.Subgame = saved
			e.InnerCopy = m.Copies.Add(saved.Clone())
		}
	default:
		e.InnerCopy = m.Copies.Add(m.Subgame.Clone())
	}
	m.Subgame.FrameNumber = 0
	m.Audio.PlayMusic(m.Subgame.Assets.MusicData)
}

// pause stops ticking the edited game where it is.
func (m *Metagame) pause() {
	e := m.Editor
	if e.HasInnerCopy() {
		e.PausedCopy = e.InnerCopy
		e.InnerCopy = uuid.Nil
	}
	m.Audio.PauseMusic()
	m.Audio.StopSounds()
}

// stop puts the edited game back the way it was before Play.
func (m *Metagame) stop() {
	e := m.Editor
	for _, id := range []uuid.UUID{e.PausedCopy, e.InnerCopy} {
		if saved, ok := m.Copies.Take(id); ok {
			m.Subgame = saved
			break
		}
	}
	m.Copies.Take(e.PausedCopy)
	m.Copies.Take(e.InnerCopy)
	e.PausedCopy = uuid.Nil
	e.InnerCopy = uuid.Nil
	m.Audio.StopMusic()
	m.Audio.StopSounds()
}

// asset reads a library asset by name.
func (m *Metagame) asset(kind library.AssetKind, name string) ([]byte, error) {
	if m.Library == nil {
		return nil, library.ErrNotFound
	}
	return m.Library.Asset(kind, name)
}

// defaultAsset reads one of the default asset files. A missing file gives an
// empty string so a new game falls back to the blank sheet and built in font.
func (m *Metagame) defaultAsset(kind library.AssetKind, filename string) cartridge.ImageString {
	name := filename[:len(filename)-len(kind.Ext())]
	data, err := m.asset(kind, name)
	if err != nil {
		return ""
	}
	return cartridge.ImageString(assets.EncodeBytes(data))
}

func (m *Metagame) newGame() error {
	size, ok := env.Parse(m.Env.Context, env.GameSize, rules.ParseGameSize)
	if !ok {
		size = m.Subgame.Size
	}
	c := cartridge.New(size,
		m.defaultAsset(library.Images, game.DefaultImageFilename),
		m.defaultAsset(library.Fonts, game.DefaultFontFilename),
	)
	g, err := game.FromCartridge(c, m.newRng())
	if err != nil {
		return err
	}
	m.Subgame = g
	m.Editor.ResetSelection()
	return nil
}

func (m *Metagame) loadGame() error {
	ctx := m.Env.Context
	name := ctx.Text(env.GameFileName)
	g, err := m.Load(m.link(name))
	if err != nil {
		return err
	}
	m.Subgame = g
	m.Editor.ResetSelection()

	image := ""
	if f := g.Assets.Filenames.Image; f != nil {
		image = *f
	}
	ctx.Set(env.Image, image)
	ctx.SetValue(env.GameSize, g.Size)
	ctx.SetValue(env.Length, g.Length)
	ctx.Set(env.Game, name)
	return nil
}

// Save writes the edited game to the library under the Collection and Game
// variables.
func (m *Metagame) Save() error {
	if m.Library == nil {
		return library.ErrNotFound
	}
	c, err := m.Subgame.ToCartridge()
	if err != nil {
		return err
	}
	return m.Library.Save(m.link(m.Env.Context.Text(env.Game)), c)
}

func (m *Metagame) setImageFile(name string) error {
	data, err := m.asset(library.Images, name)
	if err != nil {
		return err
	}
	img, err := assets.DecodePNG(data)
	if err != nil {
		return err
	}
	a := m.Subgame.Assets
	a.SetImage(img, cartridge.ImageString(assets.EncodeBytes(data)))
	filename := name + library.Images.Ext()
	a.Filenames.Image = &filename
	return nil
}

func (m *Metagame) setMusicFile(name string) error {
	data, err := m.asset(library.Music, name)
	if err != nil {
		return err
	}
	a := m.Subgame.Assets
	a.SetMusic(data)
	filename := name + library.Music.Ext()
	a.Filenames.Music = &filename
	return nil
}
