package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestCartridgeSaveLoad(t *testing.T) {
	store := openStore(t)

	if err := store.SaveCartridge("Green", "Frog", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("SaveCartridge() failed: %v", err)
	}
	if err := store.SaveCartridge("Green", "Frog", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("SaveCartridge() overwrite failed: %v", err)
	}

	data, err := store.LoadCartridge("Green", "Frog")
	if err != nil {
		t.Fatalf("LoadCartridge() failed: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("got %s, expected the second save", data)
	}

	_, err = store.LoadCartridge("Green", "Toad")
	if !errors.Is(err, ErrNoCartridge) {
		t.Errorf("got %v, expected ErrNoCartridge", err)
	}
}

func TestCartridgeListing(t *testing.T) {
	store := openStore(t)

	for _, c := range []struct{ collection, game string }{
		{"Green", "Zebra"},
		{"Green", "Ant"},
		{"Blue", "Whale"},
	} {
		if err := store.SaveCartridge(c.collection, c.game, []byte("{}")); err != nil {
			t.Fatalf("SaveCartridge() failed: %v", err)
		}
	}

	green, err := store.Cartridges("Green")
	if err != nil {
		t.Fatalf("Cartridges() failed: %v", err)
	}
	if len(green) != 2 || green[0].Game != "Ant" || green[1].Game != "Zebra" {
		t.Errorf("got %+v, expected Ant then Zebra", green)
	}
	if green[0].Size != 2 {
		t.Errorf("got size %d, expected 2", green[0].Size)
	}

	all, err := store.Cartridges("")
	if err != nil {
		t.Fatalf("Cartridges() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d cartridges, expected 3", len(all))
	}

	if err := store.DeleteCartridge("Green", "Ant"); err != nil {
		t.Fatalf("DeleteCartridge() failed: %v", err)
	}
	green, _ = store.Cartridges("Green")
	if len(green) != 1 {
		t.Errorf("got %d cartridges after delete, expected 1", len(green))
	}
}

func TestJournal(t *testing.T) {
	store := openStore(t)
	session := uuid.New()
	other := uuid.New()

	steps := []JournalEntry{
		{SessionID: session, Seq: 0, Kind: "AddMember", Name: "Add Member", Direction: "Record"},
		{SessionID: session, Seq: 1, Kind: "AddMember", Name: "Undo Add Member", Direction: "Undo"},
		{SessionID: other, Seq: 0, Kind: "RenameMember", Name: "Rename A to B", Direction: "Record"},
	}
	for _, s := range steps {
		if _, err := store.AppendJournal("Frog", s); err != nil {
			t.Fatalf("AppendJournal() failed: %v", err)
		}
	}

	entries, err := store.Journal(session)
	if err != nil {
		t.Fatalf("Journal() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	if entries[1].Name != "Undo Add Member" || entries[1].SessionID != session {
		t.Errorf("got %+v, expected the undo step", entries[1])
	}

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, expected 2", len(sessions))
	}
	for _, s := range sessions {
		if s.SessionID == session && (s.Steps != 2 || s.Game != "Frog") {
			t.Errorf("got %+v, expected 2 steps of Frog", s)
		}
	}
}

func TestPlayStats(t *testing.T) {
	store := openStore(t)

	results := []PlayResult{
		{Collection: "Green", Game: "Frog", Status: "Won", Frames: 100},
		{Collection: "Green", Game: "Frog", Status: "Lost", Frames: 240},
		{Collection: "Green", Game: "Frog", Status: "Won", Frames: 50, Seed: 9},
		{Collection: "Green", Game: "Toad", Status: "Lost", Frames: 10},
	}
	for _, r := range results {
		if _, err := store.RecordPlay(r); err != nil {
			t.Fatalf("RecordPlay() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("Green", "Frog")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Plays != 3 || stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("got %+v, expected 3 plays, 2 wins, 1 loss", stats)
	}
	if stats.AvgFrames < 129 || stats.AvgFrames > 131 {
		t.Errorf("got average %v, expected 130", stats.AvgFrames)
	}

	recent, err := store.RecentPlays("Green", "Frog", 2)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Seed != 9 {
		t.Errorf("got %+v, expected newest play first", recent)
	}

	if err := store.ClearPlays("Green", "Frog"); err != nil {
		t.Fatalf("ClearPlays() failed: %v", err)
	}
	stats, _ = store.GetGameStats("Green", "Frog")
	if stats.Plays != 0 {
		t.Errorf("got %d plays after clear, expected 0", stats.Plays)
	}
}
