package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/rules"
	"github.com/vovakirdan/game-maker/internal/storage"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilesSaveLoad(t *testing.T) {
	lib := &Files{Root: t.TempDir()}
	link := nav.Link{Collection: "Green", Game: "Frog"}

	c := cartridge.New(rules.Small, "", "")
	c.IntroText = cartridge.SameIntro("Hop!")
	if err := lib.Save(link, c); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(lib.Root, "collections", "Green", "Frog.json")); err != nil {
		t.Errorf("expected cartridge file: %v", err)
	}

	back, err := lib.Load(link)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if back.IntroText.For(0) != "Hop!" || back.Size != rules.Small {
		t.Errorf("got %+v, expected the saved cartridge", back)
	}

	_, err = lib.Load(nav.Link{Collection: "Green", Game: "Toad"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
}

func TestFilesListing(t *testing.T) {
	root := t.TempDir()
	lib := &Files{Root: root}

	writeFile(t, filepath.Join(root, "collections", "Green", "Zebra.json"), "{}")
	writeFile(t, filepath.Join(root, "collections", "Green", "Ant.json"), "{}")
	writeFile(t, filepath.Join(root, "collections", "Green", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "images", "green.png"), "png")
	writeFile(t, filepath.Join(root, "music", "tune.ogg"), "ogg")

	tests := []struct {
		name     string
		list     func() ([]string, error)
		expected []string
	}{
		{"games", func() ([]string, error) { return lib.Games("Green") }, []string{"Ant", "Zebra"}},
		{"missing collection", func() ([]string, error) { return lib.Games("Blue") }, nil},
		{"images", func() ([]string, error) { return lib.Assets(Images) }, []string{"green"}},
		{"music", func() ([]string, error) { return lib.Assets(Music) }, []string{"tune"}},
		{"fonts", func() ([]string, error) { return lib.Assets(Fonts) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.list()
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("got %v, expected %v", got, tt.expected)
				}
			}
		})
	}

	data, err := lib.Asset(Images, "green")
	if err != nil || string(data) != "png" {
		t.Errorf("got %q, %v, expected the image bytes", data, err)
	}
	if _, err := lib.Asset(Fonts, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
}

func TestSQLiteLibrary(t *testing.T) {
	root := t.TempDir()
	store, err := storage.Open(filepath.Join(root, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	files := &Files{Root: filepath.Join(root, "files")}
	for _, name := range []string{"Frog", "Toad"} {
		c := cartridge.New(rules.Big, "", "")
		c.IntroText = cartridge.SameIntro(name)
		if err := files.Save(nav.Link{Collection: "Green", Game: name}, c); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	lib := NewSQLite(store, files)
	n, err := lib.Import(files, "Green")
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d imported, expected 2", n)
	}

	games, err := lib.Games("Green")
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}
	if len(games) != 2 || games[0] != "Frog" {
		t.Errorf("got %v, expected Frog and Toad", games)
	}

	c, err := lib.Load(nav.Link{Collection: "Green", Game: "Toad"})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.IntroText.For(0) != "Toad" {
		t.Errorf("got intro %q, expected Toad", c.IntroText.For(0))
	}

	_, err = lib.Load(nav.Link{Collection: "Green", Game: "Newt"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
}
