package rules

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/core"
)

// Demand is an effect of a chore.
type Demand interface {
	Variant
	demand()
}

// Command is a demand without data. NoDemand does nothing.
type Command int

const (
	NoDemand Command = iota
	Win
	Lose
	StopAnimation
	StopMusic
	StopSounds
	SetAnimationSprite
	AddAnimationSprite
	RemoveAnimationSprite
	MoveAnimationUp
	MoveAnimationDown
	New
	Load
	Save
	EditText
	PreviewMusic
	PreviousPage
	NextPage
	SetImageFile
	SetMusicFile
	UpdateScratchFromMember
	UpdateScratchFromQuestion
	UpdateScratchFromDemand
	SwitchMember
	AddMember
	RemoveMember
	CloneMember
	RenameMember
	RemoveChore
	MoveChoreUp
	MoveChoreDown
	MoveQuestionUp
	MoveQuestionDown
	MoveDemandUp
	MoveDemandDown
	UpdateQuestion
	UpdateDemand
	SetStartSprite
	Quit
	Stop
	Play
	Pause
	FadeOut
	BackInQueue
	NextInQueue
	ResetQueue
	ClearArt
	SaveArt
	PlayPhrase
	PausePhrase
	StopPhrase
	PreviousInstrument
	NextInstrument
	PreviousTrack
	NextTrack
)

var commandNames = []string{
	"None", "Win", "Lose", "StopAnimation", "StopMusic", "StopSounds",
	"SetAnimationSprite", "AddAnimationSprite", "RemoveAnimationSprite", "MoveAnimationUp", "MoveAnimationDown",
	"New", "Load", "Save", "EditText", "PreviewMusic", "PreviousPage", "NextPage", "SetImageFile", "SetMusicFile",
	"UpdateScratchFromMember", "UpdateScratchFromQuestion", "UpdateScratchFromDemand", "SwitchMember",
	"AddMember", "RemoveMember", "CloneMember", "RenameMember", "RemoveChore",
	"MoveChoreUp", "MoveChoreDown", "MoveQuestionUp", "MoveQuestionDown", "MoveDemandUp", "MoveDemandDown",
	"UpdateQuestion", "UpdateDemand", "SetStartSprite",
	"Quit", "Stop", "Play", "Pause", "FadeOut", "BackInQueue", "NextInQueue", "ResetQueue",
	"ClearArt", "SaveArt",
	"PlayPhrase", "PausePhrase", "StopPhrase", "PreviousInstrument", "NextInstrument", "PreviousTrack", "NextTrack",
}

func (c Command) String() string { return core.EnumName(c, commandNames) }

type (
	SetSprite struct {
		Sprite Sprite
	}
	SetSwitch struct {
		Switch Switch
	}
	SetText struct {
		Text Text
	}
	// Animate shows Sprites[0] and then steps through the rest.
	Animate struct {
		Style   anim.Style `json:"style"`
		Speed   anim.Speed `json:"speed"`
		Sprites []Sprite   `json:"sprites"`
	}
	PlaySound struct {
		Name string `json:"name"`
	}
	// MotionDemand starts a motion. It is saved as "Motion".
	MotionDemand struct {
		Motion Motion
	}
	SetVariable struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	SetVariableFromText struct {
		Name string `json:"name"`
	}
	SetTextFromVariable struct {
		Name string `json:"name"`
	}
	SetTextFromPosition struct {
		Axis  Axis  `json:"axis"`
		Scale int32 `json:"scale"`
	}
	SelectPagedVariable struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	Add1ToVariable struct {
		Name string `json:"name"`
	}
	Sub1FromVariable struct {
		Name string `json:"name"`
	}
	MoveToGame struct {
		Name string `json:"name"`
	}
	FadeToGame struct {
		Name string `json:"name"`
	}
	AddToQueue struct {
		Name string `json:"name"`
	}
)

func (c Command) Variant() (string, any)   { return c.String(), nil }
func (d SetSprite) Variant() (string, any) { return "SetSprite", d.Sprite }
func (d SetSwitch) Variant() (string, any) { return "SetSwitch", d.Switch }
func (d SetText) Variant() (string, any)   { return "SetText", d.Text }

func (d Animate) Variant() (string, any) {
	type plain Animate
	if d.Sprites == nil {
		d.Sprites = []Sprite{}
	}
	return "Animate", plain(d)
}

func (d PlaySound) Variant() (string, any) {
	type plain PlaySound
	return "PlaySound", plain(d)
}

func (d MotionDemand) Variant() (string, any) {
	if d.Motion == nil {
		return "Motion", MotionStop{}
	}
	return "Motion", d.Motion
}

func (d SetVariable) Variant() (string, any) {
	type plain SetVariable
	return "SetVariable", plain(d)
}

func (d SetVariableFromText) Variant() (string, any) {
	type plain SetVariableFromText
	return "SetVariableFromText", plain(d)
}

func (d SetTextFromVariable) Variant() (string, any) {
	type plain SetTextFromVariable
	return "SetTextFromVariable", plain(d)
}

func (d SetTextFromPosition) Variant() (string, any) {
	type plain SetTextFromPosition
	return "SetTextFromPosition", plain(d)
}

func (d SelectPagedVariable) Variant() (string, any) {
	type plain SelectPagedVariable
	return "SelectPagedVariable", plain(d)
}

func (d Add1ToVariable) Variant() (string, any) {
	type plain Add1ToVariable
	return "Add1ToVariable", plain(d)
}

func (d Sub1FromVariable) Variant() (string, any) {
	type plain Sub1FromVariable
	return "Sub1FromVariable", plain(d)
}

func (d MoveToGame) Variant() (string, any) {
	type plain MoveToGame
	return "MoveToGame", plain(d)
}

func (d FadeToGame) Variant() (string, any) {
	type plain FadeToGame
	return "FadeToGame", plain(d)
}

func (d AddToQueue) Variant() (string, any) {
	type plain AddToQueue
	return "AddToQueue", plain(d)
}

func (c Command) MarshalJSON() ([]byte, error)             { return marshalVariant(c) }
func (d SetSprite) MarshalJSON() ([]byte, error)           { return marshalVariant(d) }
func (d SetSwitch) MarshalJSON() ([]byte, error)           { return marshalVariant(d) }
func (d SetText) MarshalJSON() ([]byte, error)             { return marshalVariant(d) }
func (d Animate) MarshalJSON() ([]byte, error)             { return marshalVariant(d) }
func (d PlaySound) MarshalJSON() ([]byte, error)           { return marshalVariant(d) }
func (d MotionDemand) MarshalJSON() ([]byte, error)        { return marshalVariant(d) }
func (d SetVariable) MarshalJSON() ([]byte, error)         { return marshalVariant(d) }
func (d SetVariableFromText) MarshalJSON() ([]byte, error) { return marshalVariant(d) }
func (d SetTextFromVariable) MarshalJSON() ([]byte, error) { return marshalVariant(d) }
func (d SetTextFromPosition) MarshalJSON() ([]byte, error) { return marshalVariant(d) }
func (d SelectPagedVariable) MarshalJSON() ([]byte, error) { return marshalVariant(d) }
func (d Add1ToVariable) MarshalJSON() ([]byte, error)      { return marshalVariant(d) }
func (d Sub1FromVariable) MarshalJSON() ([]byte, error)    { return marshalVariant(d) }
func (d MoveToGame) MarshalJSON() ([]byte, error)          { return marshalVariant(d) }
func (d FadeToGame) MarshalJSON() ([]byte, error)          { return marshalVariant(d) }
func (d AddToQueue) MarshalJSON() ([]byte, error)          { return marshalVariant(d) }

func (Command) demand()             {}
func (SetSprite) demand()           {}
func (SetSwitch) demand()           {}
func (SetText) demand()             {}
func (Animate) demand()             {}
func (PlaySound) demand()           {}
func (MotionDemand) demand()        {}
func (SetVariable) demand()         {}
func (SetVariableFromText) demand() {}
func (SetTextFromVariable) demand() {}
func (SetTextFromPosition) demand() {}
func (SelectPagedVariable) demand() {}
func (Add1ToVariable) demand()      {}
func (Sub1FromVariable) demand()    {}
func (MoveToGame) demand()          {}
func (FadeToGame) demand()          {}
func (AddToQueue) demand()          {}

// IsNoDemand reports whether d does nothing.
func IsNoDemand(d Demand) bool {
	if d == nil {
		return true
	}
	c, ok := d.(Command)
	return ok && c == NoDemand
}

// CloneDemand copies d so the copy shares no slices with it.
func CloneDemand(d Demand) Demand {
	if a, ok := d.(Animate); ok {
		a.Sprites = append([]Sprite(nil), a.Sprites...)
		return a
	}
	return d
}

// DemandsEqual compares two demands by value.
func DemandsEqual(a, b Demand) bool {
	aa, aok := a.(Animate)
	ba, bok := b.(Animate)
	if aok || bok {
		if !aok || !bok || aa.Style != ba.Style || aa.Speed != ba.Speed || len(aa.Sprites) != len(ba.Sprites) {
			return false
		}
		for i := range aa.Sprites {
			if aa.Sprites[i] != ba.Sprites[i] {
				return false
			}
		}
		return true
	}
	if IsNoDemand(a) || IsNoDemand(b) {
		return IsNoDemand(a) && IsNoDemand(b)
	}
	return a == b
}

// NewDemand returns the named demand with default data. Spaces in name are
// ignored.
func NewDemand(name string) (Demand, error) {
	name = compactName(name)
	if c, err := core.ParseEnum[Command](name, commandNames); err == nil {
		return c, nil
	}
	switch name {
	case "SetSprite":
		return SetSprite{Sprite: NoSprite()}, nil
	case "SetSwitch":
		return SetSwitch{}, nil
	case "SetText":
		return SetText{Text: PlainText("")}, nil
	case "Animate":
		return Animate{Speed: anim.DefaultSpeed, Sprites: []Sprite{}}, nil
	case "PlaySound":
		return PlaySound{}, nil
	case "Motion":
		return MotionDemand{Motion: MotionStop{}}, nil
	case "SetVariable":
		return SetVariable{}, nil
	case "SetVariableFromText":
		return SetVariableFromText{}, nil
	case "SetTextFromVariable":
		return SetTextFromVariable{}, nil
	case "SetTextFromPosition":
		return SetTextFromPosition{}, nil
	case "SelectPagedVariable":
		return SelectPagedVariable{}, nil
	case "Add1ToVariable":
		return Add1ToVariable{}, nil
	case "Sub1FromVariable":
		return Sub1FromVariable{}, nil
	case "MoveToGame":
		return MoveToGame{}, nil
	case "FadeToGame":
		return FadeToGame{}, nil
	case "AddToQueue":
		return AddToQueue{}, nil
	}
	return nil, unknownVariant("demand", name)
}

// DecodeDemand decodes a saved demand.
func DecodeDemand(data []byte) (Demand, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, fmt.Errorf("demand: %w", err)
	}
	if c, err := core.ParseEnum[Command](name, commandNames); err == nil {
		return c, nil
	}

	switch name {
	case "SetSprite":
		var v SetSprite
		err := decodePayload(name, payload, &v.Sprite)
		return v, err
	case "SetSwitch":
		var v SetSwitch
		err := decodePayload(name, payload, &v.Switch)
		return v, err
	case "SetText":
		var v SetText
		err := decodePayload(name, payload, &v.Text)
		return v, err
	case "Motion":
		if payload == nil {
			return nil, missingPayload(name)
		}
		m, err := DecodeMotion(payload)
		return MotionDemand{Motion: m}, err
	case "Animate":
		type plain Animate
		var v plain
		err := decodePayload(name, payload, &v)
		return Animate(v), err
	case "PlaySound":
		type plain PlaySound
		var v plain
		err := decodePayload(name, payload, &v)
		return PlaySound(v), err
	case "SetVariable":
		type plain SetVariable
		var v plain
		err := decodePayload(name, payload, &v)
		return SetVariable(v), err
	case "SetVariableFromText":
		type plain SetVariableFromText
		var v plain
		err := decodePayload(name, payload, &v)
		return SetVariableFromText(v), err
	case "SetTextFromVariable":
		type plain SetTextFromVariable
		var v plain
		err := decodePayload(name, payload, &v)
		return SetTextFromVariable(v), err
	case "SetTextFromPosition":
		type plain SetTextFromPosition
		var v plain
		err := decodePayload(name, payload, &v)
		return SetTextFromPosition(v), err
	case "SelectPagedVariable":
		type plain SelectPagedVariable
		var v plain
		err := decodePayload(name, payload, &v)
		return SelectPagedVariable(v), err
	case "Add1ToVariable":
		type plain Add1ToVariable
		var v plain
		err := decodePayload(name, payload, &v)
		return Add1ToVariable(v), err
	case "Sub1FromVariable":
		type plain Sub1FromVariable
		var v plain
		err := decodePayload(name, payload, &v)
		return Sub1FromVariable(v), err
	case "MoveToGame":
		type plain MoveToGame
		var v plain
		err := decodePayload(name, payload, &v)
		return MoveToGame(v), err
	case "FadeToGame":
		type plain FadeToGame
		var v plain
		err := decodePayload(name, payload, &v)
		return FadeToGame(v), err
	case "AddToQueue":
		type plain AddToQueue
		var v plain
		err := decodePayload(name, payload, &v)
		return AddToQueue(v), err
	}
	return nil, unknownVariant("demand", name)
}

// decodeDemands decodes a list of saved demands.
func decodeDemands(raw []json.RawMessage) ([]Demand, error) {
	out := make([]Demand, 0, len(raw))
	for i, r := range raw {
		d, err := DecodeDemand(r)
		if err != nil {
			return nil, fmt.Errorf("demand %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
