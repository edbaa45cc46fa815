// Package nav tracks which game is playing and which game comes next.
package nav

import (
	"path"
)

// Link names a game inside a collection.
type Link struct {
	Collection string `json:"collection"`
	Game       string `json:"game"`
}

// Filename is the path of the game's cartridge relative to the library root.
func (l Link) Filename() string {
	return path.Join("collections", l.Collection, l.Game+".json")
}

func (l Link) String() string {
	return l.Collection + "/" + l.Game
}

// GameQueue is the list of games visited or queued, with the index of the
// one playing.
type GameQueue struct {
	Index int
	Links []Link
}

// NewQueue creates a queue holding only the initial game.
func NewQueue(initial Link) GameQueue {
	return GameQueue{Links: []Link{initial}}
}

// Current returns the link at the queue index.
func (q *GameQueue) Current() (Link, bool) {
	if q.Index < 0 || q.Index >= len(q.Links) {
		return Link{}, false
	}
	return q.Links[q.Index], true
}

// Navigation is the game queue plus a pending request to load another game.
// The host consumes the request once the current frame is done.
type Navigation struct {
	Queue GameQueue

	next    Link
	hasNext bool
}

// New creates navigation starting at initial.
func New(initial Link) *Navigation {
	return &Navigation{Queue: NewQueue(initial)}
}

// Request asks the host to load l.
func (n *Navigation) Request(l Link) {
	n.next = l
	n.hasNext = true
}

// HasNext reports whether a game load is pending.
func (n *Navigation) HasNext() bool {
	return n.hasNext
}

// TakeNext returns and clears the pending game load.
func (n *Navigation) TakeNext() (Link, bool) {
	if !n.hasNext {
		return Link{}, false
	}
	l := n.next
	n.next = Link{}
	n.hasNext = false
	return l, true
}

// MoveTo drops everything after the current game, appends l and requests it.
func (n *Navigation) MoveTo(l Link) {
	q := &n.Queue
	q.Index++
	q.Links = q.Links[:min(q.Index, len(q.Links))]
	q.Links = append(q.Links, l)
	n.Request(l)
}

// Back steps to the previous game in the queue, staying at the first one,
// and requests it from collection.
func (n *Navigation) Back(collection string) Link {
	q := &n.Queue
	q.Index = max(q.Index, 1) - 1
	l := Link{Collection: collection, Game: q.Links[q.Index].Game}
	n.Request(l)
	return l
}

// Next steps to the following game. Past the end the queue loops back to
// the first game and forgets the rest.
func (n *Navigation) Next(collection string) (l Link, looped bool) {
	q := &n.Queue
	q.Index++
	if q.Index >= len(q.Links) {
		q.Index = 0
		q.Links = q.Links[:1]
		looped = true
	}
	l = Link{Collection: collection, Game: q.Links[q.Index].Game}
	n.Request(l)
	return l, looped
}

// Add appends l to the end of the queue without moving.
func (n *Navigation) Add(l Link) {
	n.Queue.Links = append(n.Queue.Links, l)
}

// Reset forgets every game queued after the current one.
func (n *Navigation) Reset() {
	q := &n.Queue
	q.Links = q.Links[:min(q.Index+1, len(q.Links))]
}
