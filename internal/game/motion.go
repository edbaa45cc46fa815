package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// ActiveMotion is the movement a member is currently performing. A nil
// motion behaves like Stop.
type ActiveMotion interface {
	activeMotion()
}

// Stop stands still.
type Stop struct{}

type (
	// Go moves in a straight line.
	Go struct {
		Direction rules.Direction
		Speed     anim.Speed
	}
	GoToPoint struct {
		Point mgl32.Vec2
		Speed anim.Speed
	}
	// Target homes in on a member looked up by name every tick.
	Target struct {
		Name   string
		Offset mgl32.Vec2
		Speed  anim.Speed
	}
	// Attach keeps a fixed offset from a member.
	Attach struct {
		Name   string
		Offset mgl32.Vec2
	}
	// Roaming is shared by the roaming motions. Velocity carries over between
	// ticks.
	Roaming struct {
		Area     core.Rect
		Speed    anim.Speed
		Handling rules.MovementHandling
		Velocity mgl32.Vec2
	}
	Wiggle  struct{ Roaming }
	Insect  struct{ Roaming }
	Reflect struct{ Roaming }
	Bounce  struct{ Roaming }
)

func (Stop) activeMotion()      {}
func (Go) activeMotion()        {}
func (GoToPoint) activeMotion() {}
func (Target) activeMotion()    {}
func (Attach) activeMotion()    {}
func (Wiggle) activeMotion()    {}
func (Insect) activeMotion()    {}
func (Reflect) activeMotion()   {}
func (Bounce) activeMotion()    {}

// RoamingMotion starts a roaming motion of the given type with no velocity.
func RoamingMotion(t rules.RoamType, area core.Rect, speed anim.Speed, handling rules.MovementHandling) ActiveMotion {
	r := Roaming{Area: area, Speed: speed, Handling: handling}
	switch t {
	case rules.Insect:
		return Insect{r}
	case rules.Reflect:
		return Reflect{r}
	case rules.Bounce:
		return Bounce{r}
	default:
		return Wiggle{r}
	}
}

// MotionName is the display name of a motion.
func MotionName(m ActiveMotion) string {
	switch m.(type) {
	case Go:
		return "Go"
	case GoToPoint:
		return "Go To Point"
	case Target:
		return "Target"
	case Attach:
		return "Attach"
	case Wiggle:
		return "Wiggle"
	case Insect:
		return "Insect"
	case Reflect:
		return "Reflect"
	case Bounce:
		return "Bounce"
	default:
		return "Stop"
	}
}
