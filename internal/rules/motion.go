package rules

import (
	"fmt"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/core"
)

// JumpLocation is where a JumpTo motion places a member.
type JumpLocation interface {
	Variant
	jumpLocation()
}

type (
	// ToMouse jumps to the mouse position.
	ToMouse struct{}
	// ToPoint jumps to a fixed point.
	ToPoint struct {
		Point core.Position
	}
	// ToArea jumps to a random point inside an area.
	ToArea struct {
		Area core.Rect
	}
	// ToMember jumps onto the named member.
	ToMember struct {
		Name string `json:"name"`
	}
	// Relative moves by an offset.
	Relative struct {
		Offset core.Position `json:"offset"`
	}
)

func (ToMouse) Variant() (string, any)  { return "Mouse", nil }
func (j ToPoint) Variant() (string, any) { return "Point", j.Point }
func (j ToArea) Variant() (string, any)  { return "Area", j.Area }

func (j ToMember) Variant() (string, any) {
	type plain ToMember
	return "Member", plain(j)
}

func (j Relative) Variant() (string, any) {
	type plain Relative
	return "Relative", plain(j)
}

func (j ToMouse) MarshalJSON() ([]byte, error)  { return marshalVariant(j) }
func (j ToPoint) MarshalJSON() ([]byte, error)  { return marshalVariant(j) }
func (j ToArea) MarshalJSON() ([]byte, error)   { return marshalVariant(j) }
func (j ToMember) MarshalJSON() ([]byte, error) { return marshalVariant(j) }
func (j Relative) MarshalJSON() ([]byte, error) { return marshalVariant(j) }

func (ToMouse) jumpLocation()  {}
func (ToPoint) jumpLocation()  {}
func (ToArea) jumpLocation()   {}
func (ToMember) jumpLocation() {}
func (Relative) jumpLocation() {}

// NewJumpLocation returns the named jump location with zero data.
func NewJumpLocation(name string) (JumpLocation, error) {
	switch compactName(name) {
	case "Mouse":
		return ToMouse{}, nil
	case "Point":
		return ToPoint{}, nil
	case "Area":
		return ToArea{}, nil
	case "Member":
		return ToMember{}, nil
	case "Relative":
		return Relative{}, nil
	}
	return nil, unknownVariant("jump location", name)
}

// DecodeJumpLocation decodes a saved jump location.
func DecodeJumpLocation(data []byte) (JumpLocation, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, err
	}
	switch name {
	case "Mouse":
		return ToMouse{}, nil
	case "Point":
		var v ToPoint
		err := decodePayload(name, payload, &v.Point)
		return v, err
	case "Area":
		var v ToArea
		err := decodePayload(name, payload, &v.Area)
		return v, err
	case "Member":
		type plain ToMember
		var v plain
		err := decodePayload(name, payload, &v)
		return ToMember(v), err
	case "Relative":
		type plain Relative
		var v plain
		err := decodePayload(name, payload, &v)
		return Relative(v), err
	}
	return nil, unknownVariant("jump location", name)
}

// Motion is a movement request carried by a demand.
type Motion interface {
	Variant
	motion()
}

type (
	// MotionStop halts the member.
	MotionStop struct{}
	// Go moves in one direction picked at random from the set.
	Go struct {
		Direction DirectionSet `json:"direction"`
		Speed     anim.Speed   `json:"speed"`
	}
	// GoToPoint homes in on a point.
	GoToPoint struct {
		Point core.Position `json:"point"`
		Speed anim.Speed    `json:"speed"`
	}
	// JumpTo teleports the member.
	JumpTo struct {
		Location JumpLocation
	}
	// Swap exchanges positions with the named member.
	Swap struct {
		Name string `json:"name"`
	}
	// Roam wanders inside an area.
	Roam struct {
		RoamType         RoamType         `json:"roam_type"`
		Area             core.Rect        `json:"area"`
		Speed            anim.Speed       `json:"speed"`
		MovementHandling MovementHandling `json:"movement_handling"`
	}
	// ClampPosition keeps the member's drawn pixels inside an area.
	ClampPosition struct {
		Area core.Rect `json:"area"`
	}
	// Target homes in on the named member plus an offset.
	Target struct {
		Name   string        `json:"name"`
		Offset core.Position `json:"offset"`
		Speed  anim.Speed    `json:"speed"`
	}
	// AttachFromPositions follows the named member at the current distance.
	AttachFromPositions struct {
		Name string `json:"name"`
	}
)

func (MotionStop) Variant() (string, any) { return "Stop", nil }

func (m Go) Variant() (string, any) {
	type plain Go
	return "Go", plain(m)
}

func (m GoToPoint) Variant() (string, any) {
	type plain GoToPoint
	return "GoToPoint", plain(m)
}

func (m JumpTo) Variant() (string, any) {
	if m.Location == nil {
		return "JumpTo", ToMouse{}
	}
	return "JumpTo", m.Location
}

func (m Swap) Variant() (string, any) {
	type plain Swap
	return "Swap", plain(m)
}

func (m Roam) Variant() (string, any) {
	type plain Roam
	return "Roam", plain(m)
}

func (m ClampPosition) Variant() (string, any) {
	type plain ClampPosition
	return "ClampPosition", plain(m)
}

func (m Target) Variant() (string, any) {
	type plain Target
	return "Target", plain(m)
}

func (m AttachFromPositions) Variant() (string, any) {
	type plain AttachFromPositions
	return "AttachFromPositions", plain(m)
}

func (m MotionStop) MarshalJSON() ([]byte, error)          { return marshalVariant(m) }
func (m Go) MarshalJSON() ([]byte, error)                  { return marshalVariant(m) }
func (m GoToPoint) MarshalJSON() ([]byte, error)           { return marshalVariant(m) }
func (m JumpTo) MarshalJSON() ([]byte, error)              { return marshalVariant(m) }
func (m Swap) MarshalJSON() ([]byte, error)                { return marshalVariant(m) }
func (m Roam) MarshalJSON() ([]byte, error)                { return marshalVariant(m) }
func (m ClampPosition) MarshalJSON() ([]byte, error)       { return marshalVariant(m) }
func (m Target) MarshalJSON() ([]byte, error)              { return marshalVariant(m) }
func (m AttachFromPositions) MarshalJSON() ([]byte, error) { return marshalVariant(m) }

func (MotionStop) motion()          {}
func (Go) motion()                  {}
func (GoToPoint) motion()           {}
func (JumpTo) motion()              {}
func (Swap) motion()                {}
func (Roam) motion()                {}
func (ClampPosition) motion()       {}
func (Target) motion()              {}
func (AttachFromPositions) motion() {}

// NewMotion returns the named motion with default data.
func NewMotion(name string) (Motion, error) {
	switch compactName(name) {
	case "Stop":
		return MotionStop{}, nil
	case "Go":
		return Go{Speed: anim.DefaultSpeed}, nil
	case "GoToPoint":
		return GoToPoint{Speed: anim.DefaultSpeed}, nil
	case "JumpTo":
		return JumpTo{Location: ToMouse{}}, nil
	case "Swap":
		return Swap{}, nil
	case "Roam":
		return Roam{Speed: anim.DefaultSpeed}, nil
	case "ClampPosition":
		return ClampPosition{}, nil
	case "Target":
		return Target{Speed: anim.DefaultSpeed}, nil
	case "AttachFromPositions":
		return AttachFromPositions{}, nil
	}
	return nil, unknownVariant("motion", name)
}

// DecodeMotion decodes a saved motion.
func DecodeMotion(data []byte) (Motion, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, fmt.Errorf("motion: %w", err)
	}
	switch name {
	case "Stop":
		return MotionStop{}, nil
	case "JumpTo":
		if payload == nil {
			return nil, missingPayload(name)
		}
		loc, err := DecodeJumpLocation(payload)
		return JumpTo{Location: loc}, err
	case "Go":
		type plain Go
		var v plain
		err := decodePayload(name, payload, &v)
		return Go(v), err
	case "GoToPoint":
		type plain GoToPoint
		var v plain
		err := decodePayload(name, payload, &v)
		return GoToPoint(v), err
	case "Swap":
		type plain Swap
		var v plain
		err := decodePayload(name, payload, &v)
		return Swap(v), err
	case "Roam":
		type plain Roam
		var v plain
		err := decodePayload(name, payload, &v)
		return Roam(v), err
	case "ClampPosition":
		type plain ClampPosition
		var v plain
		err := decodePayload(name, payload, &v)
		return ClampPosition(v), err
	case "Target":
		type plain Target
		var v plain
		err := decodePayload(name, payload, &v)
		return Target(v), err
	case "AttachFromPositions":
		type plain AttachFromPositions
		var v plain
		err := decodePayload(name, payload, &v)
		return AttachFromPositions(v), err
	}
	return nil, unknownVariant("motion", name)
}
