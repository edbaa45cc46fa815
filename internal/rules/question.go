package rules

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/game-maker/internal/core"
)

// When is the time condition of IsTimeAt.
type When interface {
	Variant
	when()
}

// Moment is a time condition without data.
type Moment int

const (
	Start Moment = iota
	End
)

var momentNames = []string{"Start", "End"}

// Exact fires when the frame number equals Time*5.
type Exact struct {
	Time int `json:"time"`
}

// Random fires at most once on a frame drawn from [Start, End).
type Random struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (m Moment) Variant() (string, any) { return core.EnumName(m, momentNames), nil }

func (e Exact) Variant() (string, any) {
	type plain Exact
	return "Exact", plain(e)
}

func (r Random) Variant() (string, any) {
	type plain Random
	return "Random", plain(r)
}

func (m Moment) MarshalJSON() ([]byte, error) { return marshalVariant(m) }
func (e Exact) MarshalJSON() ([]byte, error)  { return marshalVariant(e) }
func (r Random) MarshalJSON() ([]byte, error) { return marshalVariant(r) }

func (Moment) when() {}
func (Exact) when()  {}
func (Random) when() {}

// NewWhen returns the named time condition with zero data.
func NewWhen(name string) (When, error) {
	switch compactName(name) {
	case "Start":
		return Start, nil
	case "End":
		return End, nil
	case "Exact":
		return Exact{}, nil
	case "Random":
		return Random{}, nil
	}
	return nil, unknownVariant("when", name)
}

// DecodeWhen decodes a saved time condition.
func DecodeWhen(data []byte) (When, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, err
	}
	switch name {
	case "Start":
		return Start, nil
	case "End":
		return End, nil
	case "Exact":
		var v struct {
			Time int `json:"time"`
		}
		err := decodePayload(name, payload, &v)
		return Exact{Time: v.Time}, err
	case "Random":
		var v struct {
			Start int `json:"start"`
			End   int `json:"end"`
		}
		err := decodePayload(name, payload, &v)
		return Random{Start: v.Start, End: v.End}, err
	}
	return nil, unknownVariant("when", name)
}

// CollisionWith is what IsCollidingWith tests against.
type CollisionWith interface {
	Variant
	collisionWith()
}

// WithArea collides with any occupied pixel inside Area.
type WithArea struct {
	Area core.Rect
}

// WithMember collides with the named member.
type WithMember struct {
	Name string `json:"name"`
}

func (w WithArea) Variant() (string, any) { return "Area", w.Area }

func (w WithMember) Variant() (string, any) {
	type plain WithMember
	return "Member", plain(w)
}

func (w WithArea) MarshalJSON() ([]byte, error)   { return marshalVariant(w) }
func (w WithMember) MarshalJSON() ([]byte, error) { return marshalVariant(w) }

func (WithArea) collisionWith()   {}
func (WithMember) collisionWith() {}

// NewCollisionWith returns the named collision target with zero data.
func NewCollisionWith(name string) (CollisionWith, error) {
	switch compactName(name) {
	case "Area":
		return WithArea{}, nil
	case "Member":
		return WithMember{}, nil
	}
	return nil, unknownVariant("collision", name)
}

// DecodeCollisionWith decodes a saved collision target.
func DecodeCollisionWith(data []byte) (CollisionWith, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, err
	}
	switch name {
	case "Area":
		var v WithArea
		err := decodePayload(name, payload, &v.Area)
		return v, err
	case "Member":
		var v struct {
			Name string `json:"name"`
		}
		err := decodePayload(name, payload, &v)
		return WithMember{Name: v.Name}, err
	}
	return nil, unknownVariant("collision", name)
}

// Question is a condition of a chore.
type Question interface {
	Variant
	question()
}

// Query is a question without data. NoQuestion is always true.
type Query int

const (
	NoQuestion Query = iota
	IsAnimationFinished
	IsSubgamePlaying
	IsSubgameEnding
	IsOnDesktop
	IsOnWeb
)

var queryNames = []string{"None", "IsAnimationFinished", "IsSubgamePlaying", "IsSubgameEnding", "IsOnDesktop", "IsOnWeb"}

type (
	IsTimeAt struct {
		When When
	}
	IsMouseInteracting struct {
		Which WhichButton `json:"which"`
		State MouseState  `json:"state"`
		Hover Hover       `json:"hover"`
	}
	IsSwitchSetTo struct {
		Name   string `json:"name"`
		Switch Switch `json:"switch"`
	}
	IsWinStatusSetTo struct {
		Status WinStatus
	}
	IsSpriteSetTo struct {
		Sprite Sprite
	}
	IsCollidingWith struct {
		With CollisionWith
	}
	IsTextSetTo struct {
		Value string `json:"value"`
	}
	IsVariableSetTo struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	IsPagedVariableSelected struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	IsPagedVariableValid struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	IsAnimationSpriteValid struct {
		Index int `json:"index"`
	}
	IsShortcutUsed struct {
		Shortcut core.Shortcut
	}
)

func (q Query) Variant() (string, any)            { return core.EnumName(q, queryNames), nil }
func (q IsWinStatusSetTo) Variant() (string, any) { return "IsWinStatusSetTo", q.Status }
func (q IsSpriteSetTo) Variant() (string, any)    { return "IsSpriteSetTo", q.Sprite }
func (q IsShortcutUsed) Variant() (string, any)   { return "IsShortcutUsed", q.Shortcut }

func (q IsTimeAt) Variant() (string, any) {
	if q.When == nil {
		return "IsTimeAt", Start
	}
	return "IsTimeAt", q.When
}

func (q IsCollidingWith) Variant() (string, any) {
	if q.With == nil {
		return "IsCollidingWith", WithArea{}
	}
	return "IsCollidingWith", q.With
}

func (q IsMouseInteracting) Variant() (string, any) {
	type plain IsMouseInteracting
	return "IsMouseInteracting", plain(q)
}

func (q IsSwitchSetTo) Variant() (string, any) {
	type plain IsSwitchSetTo
	return "IsSwitchSetTo", plain(q)
}

func (q IsTextSetTo) Variant() (string, any) {
	type plain IsTextSetTo
	return "IsTextSetTo", plain(q)
}

func (q IsVariableSetTo) Variant() (string, any) {
	type plain IsVariableSetTo
	return "IsVariableSetTo", plain(q)
}

func (q IsPagedVariableSelected) Variant() (string, any) {
	type plain IsPagedVariableSelected
	return "IsPagedVariableSelected", plain(q)
}

func (q IsPagedVariableValid) Variant() (string, any) {
	type plain IsPagedVariableValid
	return "IsPagedVariableValid", plain(q)
}

func (q IsAnimationSpriteValid) Variant() (string, any) {
	type plain IsAnimationSpriteValid
	return "IsAnimationSpriteValid", plain(q)
}

func (q Query) MarshalJSON() ([]byte, error)                   { return marshalVariant(q) }
func (q IsTimeAt) MarshalJSON() ([]byte, error)                { return marshalVariant(q) }
func (q IsMouseInteracting) MarshalJSON() ([]byte, error)      { return marshalVariant(q) }
func (q IsSwitchSetTo) MarshalJSON() ([]byte, error)           { return marshalVariant(q) }
func (q IsWinStatusSetTo) MarshalJSON() ([]byte, error)        { return marshalVariant(q) }
func (q IsSpriteSetTo) MarshalJSON() ([]byte, error)           { return marshalVariant(q) }
func (q IsCollidingWith) MarshalJSON() ([]byte, error)         { return marshalVariant(q) }
func (q IsTextSetTo) MarshalJSON() ([]byte, error)             { return marshalVariant(q) }
func (q IsVariableSetTo) MarshalJSON() ([]byte, error)         { return marshalVariant(q) }
func (q IsPagedVariableSelected) MarshalJSON() ([]byte, error) { return marshalVariant(q) }
func (q IsPagedVariableValid) MarshalJSON() ([]byte, error)    { return marshalVariant(q) }
func (q IsAnimationSpriteValid) MarshalJSON() ([]byte, error)  { return marshalVariant(q) }
func (q IsShortcutUsed) MarshalJSON() ([]byte, error)          { return marshalVariant(q) }

func (Query) question()                   {}
func (IsTimeAt) question()                {}
func (IsMouseInteracting) question()      {}
func (IsSwitchSetTo) question()           {}
func (IsWinStatusSetTo) question()        {}
func (IsSpriteSetTo) question()           {}
func (IsCollidingWith) question()         {}
func (IsTextSetTo) question()             {}
func (IsVariableSetTo) question()         {}
func (IsPagedVariableSelected) question() {}
func (IsPagedVariableValid) question()    {}
func (IsAnimationSpriteValid) question()  {}
func (IsShortcutUsed) question()          {}

// IsNoQuestion reports whether q is the empty question.
func IsNoQuestion(q Question) bool {
	return q == nil || q == Question(NoQuestion)
}

// NewQuestion returns the named question with default data. Spaces in name
// are ignored.
func NewQuestion(name string) (Question, error) {
	name = compactName(name)
	if q, err := core.ParseEnum[Query](name, queryNames); err == nil {
		return q, nil
	}
	switch name {
	case "IsTimeAt":
		return IsTimeAt{When: Start}, nil
	case "IsMouseInteracting":
		return IsMouseInteracting{}, nil
	case "IsSwitchSetTo":
		return IsSwitchSetTo{}, nil
	case "IsWinStatusSetTo":
		return IsWinStatusSetTo{}, nil
	case "IsSpriteSetTo":
		return IsSpriteSetTo{Sprite: NoSprite()}, nil
	case "IsCollidingWith":
		return IsCollidingWith{With: WithArea{}}, nil
	case "IsTextSetTo":
		return IsTextSetTo{}, nil
	case "IsVariableSetTo":
		return IsVariableSetTo{}, nil
	case "IsPagedVariableSelected":
		return IsPagedVariableSelected{}, nil
	case "IsPagedVariableValid":
		return IsPagedVariableValid{}, nil
	case "IsAnimationSpriteValid":
		return IsAnimationSpriteValid{}, nil
	case "IsShortcutUsed":
		return IsShortcutUsed{}, nil
	}
	return nil, unknownVariant("question", name)
}

// DecodeQuestion decodes a saved question.
func DecodeQuestion(data []byte) (Question, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, fmt.Errorf("question: %w", err)
	}
	if q, err := core.ParseEnum[Query](name, queryNames); err == nil {
		return q, nil
	}

	switch name {
	case "IsTimeAt":
		if payload == nil {
			return nil, missingPayload(name)
		}
		w, err := DecodeWhen(payload)
		return IsTimeAt{When: w}, err
	case "IsCollidingWith":
		if payload == nil {
			return nil, missingPayload(name)
		}
		c, err := DecodeCollisionWith(payload)
		return IsCollidingWith{With: c}, err
	case "IsMouseInteracting":
		type plain IsMouseInteracting
		var v plain
		err := decodePayload(name, payload, &v)
		return IsMouseInteracting(v), err
	case "IsSwitchSetTo":
		type plain IsSwitchSetTo
		var v plain
		err := decodePayload(name, payload, &v)
		return IsSwitchSetTo(v), err
	case "IsWinStatusSetTo":
		var v IsWinStatusSetTo
		err := decodePayload(name, payload, &v.Status)
		return v, err
	case "IsSpriteSetTo":
		var v IsSpriteSetTo
		err := decodePayload(name, payload, &v.Sprite)
		return v, err
	case "IsTextSetTo":
		type plain IsTextSetTo
		var v plain
		err := decodePayload(name, payload, &v)
		return IsTextSetTo(v), err
	case "IsVariableSetTo":
		type plain IsVariableSetTo
		var v plain
		err := decodePayload(name, payload, &v)
		return IsVariableSetTo(v), err
	case "IsPagedVariableSelected":
		type plain IsPagedVariableSelected
		var v plain
		err := decodePayload(name, payload, &v)
		return IsPagedVariableSelected(v), err
	case "IsPagedVariableValid":
		type plain IsPagedVariableValid
		var v plain
		err := decodePayload(name, payload, &v)
		return IsPagedVariableValid(v), err
	case "IsAnimationSpriteValid":
		type plain IsAnimationSpriteValid
		var v plain
		err := decodePayload(name, payload, &v)
		return IsAnimationSpriteValid(v), err
	case "IsShortcutUsed":
		var v IsShortcutUsed
		err := decodePayload(name, payload, &v.Shortcut)
		return v, err
	}
	return nil, unknownVariant("question", name)
}

// decodeQuestions decodes a list of saved questions.
func decodeQuestions(raw []json.RawMessage) ([]Question, error) {
	out := make([]Question, 0, len(raw))
	for i, r := range raw {
		q, err := DecodeQuestion(r)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		out = append(out, q)
	}
	return out, nil
}
