// Package library loads and saves cartridges and the asset files the editor
// offers.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/nav"
)

// ErrNotFound is returned when a game or asset does not exist.
var ErrNotFound = errors.New("library: not found")

// AssetKind is a directory of asset files.
type AssetKind int

const (
	Images AssetKind = iota
	Fonts
	Music
	Sounds
)

// Dir is the directory the assets live in, relative to the library root.
func (k AssetKind) Dir() string {
	switch k {
	case Fonts:
		return "fonts"
	case Music:
		return "music"
	case Sounds:
		return "sounds"
	default:
		return "images"
	}
}

// Ext is the file extension of the assets, including the dot.
func (k AssetKind) Ext() string {
	switch k {
	case Music, Sounds:
		return ".ogg"
	default:
		return ".png"
	}
}

// Library stores cartridges by link and serves asset files by name.
type Library interface {
	Load(l nav.Link) (cartridge.Cartridge, error)
	Save(l nav.Link, c cartridge.Cartridge) error
	// Games lists the games of a collection by name.
	Games(collection string) ([]string, error)
	// Asset reads the named asset. name has no extension.
	Asset(kind AssetKind, name string) ([]byte, error)
	// Assets lists asset names without extensions.
	Assets(kind AssetKind) ([]string, error)
}

// Files is a library kept in a directory tree:
//
//	collections/{collection}/{game}.json
//	images/*.png  fonts/*.png  music/*.ogg  sounds/*.ogg
type Files struct {
	Root string
}

// NewFiles returns a library rooted at root. A leading ~ expands to the home
// directory.
func NewFiles(root string) (*Files, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("library: cannot expand home directory: %w", err)
		}
		root = filepath.Join(home, root[1:])
	}
	return &Files{Root: root}, nil
}

func (f *Files) path(rel string) string {
	return filepath.Join(f.Root, filepath.FromSlash(rel))
}

func (f *Files) read(rel string) ([]byte, error) {
	data, err := os.ReadFile(f.path(rel))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rel)
	}
	if err != nil {
		return nil, fmt.Errorf("library: cannot read %s: %w", rel, err)
	}
	return data, nil
}

// Load reads and parses a cartridge.
func (f *Files) Load(l nav.Link) (cartridge.Cartridge, error) {
	data, err := f.read(l.Filename())
	if err != nil {
		return cartridge.Cartridge{}, err
	}
	c, err := cartridge.Parse(data)
	if err != nil {
		return cartridge.Cartridge{}, fmt.Errorf("library: cannot load %s: %w", l, err)
	}
	return c, nil
}

// Save encodes and writes a cartridge, creating the collection directory.
func (f *Files) Save(l nav.Link, c cartridge.Cartridge) error {
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("library: cannot save %s: %w", l, err)
	}
	p := f.path(l.Filename())
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("library: cannot create directory for %s: %w", l, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("library: cannot write %s: %w", l, err)
	}
	return nil
}

// Games lists the cartridges in a collection directory.
func (f *Files) Games(collection string) ([]string, error) {
	return f.list(filepath.Join("collections", collection), ".json")
}

// Asset reads an asset file.
func (f *Files) Asset(kind AssetKind, name string) ([]byte, error) {
	return f.read(kind.Dir() + "/" + name + kind.Ext())
}

// Assets lists the asset files of a kind.
func (f *Files) Assets(kind AssetKind) ([]string, error) {
	return f.list(kind.Dir(), kind.Ext())
}

// list returns the sorted stems of the files in dir with extension ext. A
// missing directory lists nothing.
func (f *Files) list(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(f.path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("library: cannot list %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(names)
	return names, nil
}
