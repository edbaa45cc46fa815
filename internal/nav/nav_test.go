package nav

import (
	"slices"
	"testing"
)

func games(q GameQueue) []string {
	var out []string
	for _, l := range q.Links {
		out = append(out, l.Game)
	}
	return out
}

func TestLinkFilename(t *testing.T) {
	l := Link{Collection: "Green", Game: "Frog"}
	if got := l.Filename(); got != "collections/Green/Frog.json" {
		t.Errorf("got %q, expected %q", got, "collections/Green/Frog.json")
	}
}

func TestMoveToTruncates(t *testing.T) {
	n := New(Link{"C", "Start"})
	n.Add(Link{"C", "Queued"})
	n.MoveTo(Link{"C", "A"})

	if got := games(n.Queue); !slices.Equal(got, []string{"Start", "A"}) {
		t.Errorf("got %v, expected [Start A]", got)
	}
	if n.Queue.Index != 1 {
		t.Errorf("got index %d, expected 1", n.Queue.Index)
	}
	l, ok := n.TakeNext()
	if !ok || l.Game != "A" {
		t.Errorf("got %v %v, expected A requested", l, ok)
	}
	if n.HasNext() {
		t.Error("request should be consumed")
	}
}

func TestBackStopsAtFirst(t *testing.T) {
	n := New(Link{"C", "Start"})
	n.MoveTo(Link{"C", "A"})
	n.TakeNext()

	if l := n.Back("Other"); l != (Link{"Other", "Start"}) {
		t.Errorf("got %v, expected Other/Start", l)
	}
	if l := n.Back("C"); l.Game != "Start" || n.Queue.Index != 0 {
		t.Errorf("got %v at %d, expected Start at 0", l, n.Queue.Index)
	}
}

func TestNextLoopsAround(t *testing.T) {
	n := New(Link{"C", "Start"})
	n.Add(Link{"C", "B"})

	l, looped := n.Next("C")
	if l.Game != "B" || looped {
		t.Errorf("got %v looped=%v, expected B", l, looped)
	}

	l, looped = n.Next("C")
	if l.Game != "Start" || !looped {
		t.Errorf("got %v looped=%v, expected Start after looping", l, looped)
	}
	if got := games(n.Queue); !slices.Equal(got, []string{"Start"}) {
		t.Errorf("got %v, expected [Start]", got)
	}
}

func TestReset(t *testing.T) {
	n := New(Link{"C", "Start"})
	n.Add(Link{"C", "B"})
	n.Add(Link{"C", "D"})
	n.Reset()

	if got := games(n.Queue); !slices.Equal(got, []string{"Start"}) {
		t.Errorf("got %v, expected [Start]", got)
	}
}
