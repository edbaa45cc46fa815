package library

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/storage"
)

// SQLite keeps cartridges in the database and reads asset files from a
// directory tree.
type SQLite struct {
	Store *storage.Store
	Files *Files
}

// NewSQLite returns a library backed by store, with assets under files.
func NewSQLite(store *storage.Store, files *Files) *SQLite {
	return &SQLite{Store: store, Files: files}
}

// Load reads a cartridge from the database.
func (s *SQLite) Load(l nav.Link) (cartridge.Cartridge, error) {
	data, err := s.Store.LoadCartridge(l.Collection, l.Game)
	if errors.Is(err, storage.ErrNoCartridge) {
		return cartridge.Cartridge{}, fmt.Errorf("%w: %s", ErrNotFound, l)
	}
	if err != nil {
		return cartridge.Cartridge{}, fmt.Errorf("library: cannot load %s: %w", l, err)
	}
	c, err := cartridge.Parse(data)
	if err != nil {
		return cartridge.Cartridge{}, fmt.Errorf("library: cannot load %s: %w", l, err)
	}
	return c, nil
}

// Save stores a cartridge in the database.
func (s *SQLite) Save(l nav.Link, c cartridge.Cartridge) error {
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("library: cannot save %s: %w", l, err)
	}
	return s.Store.SaveCartridge(l.Collection, l.Game, data)
}

// Games lists the games stored for a collection.
func (s *SQLite) Games(collection string) ([]string, error) {
	infos, err := s.Store.Cartridges(collection)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Game)
	}
	return names, nil
}

// Asset reads an asset file.
func (s *SQLite) Asset(kind AssetKind, name string) ([]byte, error) {
	return s.Files.Asset(kind, name)
}

// Assets lists asset files.
func (s *SQLite) Assets(kind AssetKind) ([]string, error) {
	return s.Files.Assets(kind)
}

// Import copies every cartridge of a collection from files into the
// database and returns how many were copied.
func (s *SQLite) Import(from Library, collection string) (int, error) {
	names, err := from.Games(collection)
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		l := nav.Link{Collection: collection, Game: name}
		c, err := from.Load(l)
		if err != nil {
			return i, err
		}
		if err := s.Save(l, c); err != nil {
			return i, err
		}
	}
	return len(names), nil
}
