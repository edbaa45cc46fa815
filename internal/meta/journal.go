package meta

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/storage"
)

// JournalStore is where journal entries are written.
type JournalStore interface {
	AppendJournal(game string, e storage.JournalEntry) (int64, error)
}

// Journal writes every history step of one editing session to a store.
type Journal struct {
	Store     JournalStore
	SessionID uuid.UUID

	seq int
}

// NewJournal starts a session with a fresh id.
func NewJournal(store JournalStore) *Journal {
	return &Journal{Store: store, SessionID: uuid.New()}
}

// Log appends one entry per step. action is "Record", "Undo" or "Redo".
func (j *Journal) Log(gameName, action string, steps ...history.Step) error {
	if j == nil || j.Store == nil {
		return nil
	}
	for _, s := range steps {
		e := storage.JournalEntry{
			SessionID: j.SessionID,
			Seq:       j.seq,
			Kind:      history.Kind(s.Forward),
			Name:      s.Name(),
			Direction: action,
		}
		if _, err := j.Store.AppendJournal(gameName, e); err != nil {
			return err
		}
		j.seq++
	}
	return nil
}
