package registry

import (
	"testing"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-big", "Big Test", func() cartridge.Cartridge {
		return cartridge.New(rules.Big, "", "")
	})

	if !Exists("zz-test-big") {
		t.Fatal("registered cartridge does not exist")
	}
	if Exists("zz-test-missing") {
		t.Error("unregistered cartridge exists")
	}

	c, err := Create("zz-test-big")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Size != rules.Big {
		t.Errorf("got size %v, expected Big", c.Size)
	}

	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("expected an error for an unknown cartridge")
	}

	found := false
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("list not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		if info.ID == "zz-test-big" {
			found = true
			if info.Title != "Big Test" {
				t.Errorf("got title %q, expected %q", info.Title, "Big Test")
			}
		}
	}
	if !found {
		t.Error("registered cartridge missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() cartridge.Cartridge { return cartridge.New(rules.Small, "", "") }
	Register("zz-test-dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("zz-test-dup", "Dup", f)
}
