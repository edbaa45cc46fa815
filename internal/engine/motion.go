package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
)

// moveTo steps x by velocity, landing on other once it is within one step.
func moveTo(x, other, velocity float32) float32 {
	if core.Abs(x-other) > core.Abs(velocity) {
		return x + velocity
	}
	return other
}

// homeIn moves pos toward point at speed without overshooting. Each axis
// lands separately.
func homeIn(pos, point mgl32.Vec2, speed float32) (mgl32.Vec2, mgl32.Vec2) {
	v := point.Sub(pos)
	d := v.Len()
	velocity := mgl32.Vec2{v.X() / d * speed, v.Y() / d * speed}
	return mgl32.Vec2{
		moveTo(pos.X(), point.X(), velocity.X()),
		moveTo(pos.Y(), point.Y(), velocity.Y()),
	}, velocity
}

// move advances the active motion of member i by one tick.
func (t *tick) move(i int) {
	g := t.g
	m := &g.Members[i]

	switch mo := m.Motion.(type) {
	case game.Go:
		x, y := mo.Direction.Unit()
		m.Position = m.Position.Add(mgl32.Vec2{x, y}.Mul(mo.Speed.PixelsPerTick()))

	case game.GoToPoint:
		m.Position, _ = homeIn(m.Position, mo.Point, mo.Speed.PixelsPerTick())

	case game.Attach:
		if j, ok := g.MemberIndex(mo.Name); ok {
			m.Position = g.Members[j].Position.Add(mo.Offset)
		}

	case game.Target:
		// Offset is kept with the motion but homing aims at the member itself.
		if j, ok := g.MemberIndex(mo.Name); ok {
			m.Position, _ = homeIn(m.Position, g.Members[j].Position, mo.Speed.PixelsPerTick())
		}

	case game.Wiggle:
		t.wiggle(m, mo.Roaming)

	case game.Insect:
		m.Motion = game.Insect{Roaming: t.insect(m, mo.Roaming)}

	case game.Reflect:
		m.Motion = game.Reflect{Roaming: t.reflect(m, mo.Roaming)}

	case game.Bounce:
		m.Motion = game.Bounce{Roaming: t.bounce(m, mo.Roaming)}
	}
}

// randomStep draws a step with each axis in [-speed, speed].
func (t *tick) randomStep(speed float32) mgl32.Vec2 {
	return mgl32.Vec2{t.g.Rng.Float32(-speed, speed), t.g.Rng.Float32(-speed, speed)}
}

// wiggle jitters inside the area. A member outside it heads for the
// centre of the area first.
func (t *tick) wiggle(m *game.Member, r game.Roaming) {
	speed := r.Speed.PixelsPerTick()
	step := t.randomStep(speed)
	inner := game.ConstrainedArea(t.g.Assets, m, r.Area)
	if inner.W > 0 && inner.H > 0 && inner.Contains(m.Position) {
		m.Position = m.Position.Add(step)
		return
	}
	m.Position, _ = homeIn(m.Position, r.Area.Centre(), speed)
}

// insect keeps flying in one direction, changing it now and then.
func (t *tick) insect(m *game.Member, r game.Roaming) game.Roaming {
	speed := r.Speed.PixelsPerTick()
	if r.Velocity == (mgl32.Vec2{}) || t.g.Rng.Float32(0, 1) < 0.1 {
		r.Velocity = t.randomStep(speed)
	}
	inner := game.ConstrainedArea(t.g.Assets, m, r.Area)
	if inner.W > 0 && inner.H > 0 && inner.Contains(m.Position) {
		m.Position = m.Position.Add(r.Velocity)
		return r
	}
	m.Position, r.Velocity = homeIn(m.Position, r.Area.Centre(), speed)
	return r
}

// reflect moves in a straight line and turns around at the edges. An axis
// with no room to move stays still.
func (t *tick) reflect(m *game.Member, r game.Roaming) game.Roaming {
	speed := r.Speed.PixelsPerTick()
	inner := game.ConstrainedArea(t.g.Assets, m, r.Area)
	if r.Velocity == (mgl32.Vec2{}) {
		r.Velocity = t.randomStep(speed)
	}
	if inner.W <= 0 {
		r.Velocity[0] = 0
	}
	if inner.H <= 0 {
		r.Velocity[1] = 0
	}
	m.Position = m.Position.Add(r.Velocity)

	if m.Position.X() > inner.X+inner.W {
		r.Velocity[0] = -core.Abs(r.Velocity.X())
	}
	if m.Position.X() < inner.X {
		r.Velocity[0] = core.Abs(r.Velocity.X())
	}
	if m.Position.Y() > inner.Y+inner.H {
		r.Velocity[1] = -core.Abs(r.Velocity.Y())
	}
	if m.Position.Y() < inner.Y {
		r.Velocity[1] = core.Abs(r.Velocity.Y())
	}
	return r
}

// bounce falls under constant acceleration and is thrown back up from the
// bottom of the area with the speed needed to reach its top.
func (t *tick) bounce(m *game.Member, r game.Roaming) game.Roaming {
	speed := r.Speed.PixelsPerTick()
	inner := game.ConstrainedArea(t.g.Assets, m, r.Area)
	acceleration := speed / 15
	deft := -sqrt32(2 * acceleration * (m.Position.Y() - inner.Y))

	if r.Velocity == (mgl32.Vec2{}) {
		sign := float32(t.g.Rng.Int(0, 2)*2 - 1)
		var y float32
		if m.Position.Y() > inner.Y {
			y = deft
		}
		r.Velocity = mgl32.Vec2{speed * sign, y}
	}
	if inner.W <= 0 {
		r.Velocity[0] = 0
	}
	m.Position = m.Position.Add(r.Velocity)
	r.Velocity[1] += acceleration

	if m.Position.X() > inner.X+inner.W {
		r.Velocity[0] = -core.Abs(r.Velocity.X())
	}
	if m.Position.X() < inner.X {
		r.Velocity[0] = core.Abs(r.Velocity.X())
	}
	if m.Position.Y() > inner.Y+inner.H {
		r.Velocity[1] = deft
	}
	return r
}
