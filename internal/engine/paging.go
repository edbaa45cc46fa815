package engine

import (
	"strconv"

	"github.com/vovakirdan/game-maker/internal/edit"
	"github.com/vovakirdan/game-maker/internal/env"
)

// pagedVariable is a list the editor shows a page at a time through
// "{slot N}" members.
type pagedVariable struct {
	slot     string
	count    int
	indexVar string
	nameVar  string
	name     func(i int) string
}

// paged looks up the paged variable called name. Member needs a subgame.
func (t *tick) paged(name string) (pagedVariable, bool) {
	e := t.f.Editor
	switch name {
	case "Paint":
		return pagedVariable{slot: env.Paint, count: len(t.f.DrawTool.Paints), indexVar: env.PaintIndex}, true
	case "Member":
		sub := t.f.Subgame
		if sub == nil {
			return pagedVariable{}, false
		}
		return pagedVariable{
			slot: env.MemberPreview, count: len(sub.Members),
			indexVar: env.MemberIndex, nameVar: env.MemberName,
			name: func(i int) string { return sub.Members[i].Name },
		}, true
	case "Image File":
		return pagedVariable{
			slot: env.ImageFile, count: len(e.Choices.Images),
			indexVar: env.ImageFileIndex, nameVar: env.ImageFileName,
			name: func(i int) string { return e.Choices.Images[i] },
		}, true
	case "Music File":
		return pagedVariable{
			slot: env.MusicName, count: len(e.Choices.Music),
			indexVar: env.MusicFileIndex, nameVar: env.MusicFileName,
			name: func(i int) string { return e.Choices.Music[i] },
		}, true
	case "Game File":
		return pagedVariable{
			slot: env.GameName, count: len(e.Choices.Games),
			indexVar: env.GameFileIndex, nameVar: env.GameFileName,
			name: func(i int) string { return e.Choices.Games[i] },
		}, true
	}
	return pagedVariable{}, false
}

// index turns the slot number value on the current page into a one based
// index into the whole list. Unparsable values count as slot 1.
func (t *tick) index(p pagedVariable, value string) int {
	perPage := edit.MaxVarPerPage(t.g.Members, p.slot)
	n := edit.PaddedLen(p.count, perPage)
	slot, err := strconv.Atoi(value)
	if err != nil {
		slot = 1
	}
	return slot + edit.OffsetForPage(t.f.Editor.Page, perPage, n)
}

// isPagedSelected reports whether slot value on this page is the selected
// item. Everything but paints is only shown while editing.
func (t *tick) isPagedSelected(name, value string) bool {
	p, ok := t.paged(name)
	if !ok || (name != "Paint" && t.f.Subgame == nil) {
		return false
	}
	return t.index(p, value) == t.f.Env.Context.IntOr(p.indexVar, 1)
}

// isPagedValid reports whether slot value on this page shows an item.
func (t *tick) isPagedValid(name, value string) bool {
	p, ok := t.paged(name)
	if !ok {
		return false
	}
	i := t.index(p, value) - 1
	return i >= 0 && i < p.count
}

// selectPaged selects the item in slot value on this page.
func (t *tick) selectPaged(name, value string) {
	p, ok := t.paged(name)
	if !ok || (name != "Paint" && t.f.Subgame == nil) {
		return
	}
	i := t.index(p, value) - 1
	if i < 0 || i >= p.count {
		return
	}
	ctx := t.f.Env.Context
	ctx.SetInt(p.indexVar, i+1)
	if p.name != nil {
		ctx.Set(p.nameVar, p.name(i))
	}
	if name == "Paint" {
		t.f.DrawTool.PaintIndex = i
	}
}
