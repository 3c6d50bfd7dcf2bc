package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the bird: a circle at a fixed column that falls under gravity
// and is kicked upward by flaps.
type Actor struct {
	X        float64 // Fixed horizontal center
	Y        float64 // Vertical center
	Velocity float64 // Vertical velocity, positive is down
	Tilt     float64 // Radians, negative is nose-up
	Radius   float64 // Collision radius

	physics config.Physics
	restY   float64
	bobAmp  float64
	bobRate float64
}

// NewActor creates an actor at its rest position.
func NewActor(cfg config.FlappyConfig) *Actor {
	a := &Actor{
		X:       cfg.Actor.X,
		Radius:  cfg.Actor.Radius,
		physics: cfg.Physics,
		restY:   cfg.Actor.RestY,
		bobAmp:  cfg.Actor.BobAmplitude,
		bobRate: cfg.Actor.BobSpeed,
	}
	a.Reset()
	return a
}

// Reset puts the actor back at rest: level, motionless.
func (a *Actor) Reset() {
	a.Y = a.restY
	a.Velocity = 0
	a.Tilt = 0
}

// Flap replaces the current velocity with the upward impulse and pitches
// the nose up.
func (a *Actor) Flap() {
	a.Velocity = a.physics.FlapImpulse
	a.Tilt = a.physics.TiltUp()
}

// Integrate advances the actor by one tick and reports whether it touched
// the floor. On contact Y is clamped so the actor rests on the floor.
func (a *Actor) Integrate(floorY float64) bool {
	a.Velocity += a.physics.Gravity
	a.Y += a.Velocity

	// Rising snaps nose-up; falling rotates gradually nose-down.
	if a.Velocity < 0 {
		a.Tilt = a.physics.TiltUp()
	} else {
		a.Tilt = core.ClampF(a.Tilt+a.physics.TiltRate, a.physics.TiltUp(), a.physics.TiltMax())
	}

	if a.Y+a.Radius >= floorY {
		a.Y = floorY - a.Radius
		return true
	}
	return false
}

// Bob places the actor on its idle sine path. It only depends on the time
// spent on the title screen and leaves velocity untouched.
func (a *Actor) Bob(elapsed time.Duration) {
	a.Y = BobY(a.restY, a.bobAmp, a.bobRate, elapsed)
}

// BobY returns the idle vertical position after elapsed time.
func BobY(restY, amplitude, rate float64, elapsed time.Duration) float64 {
	return restY + math.Sin(elapsed.Seconds()*rate)*amplitude
}

// Top returns the upper edge of the collision circle.
func (a *Actor) Top() float64 {
	return a.Y - a.Radius
}

// Bottom returns the lower edge of the collision circle.
func (a *Actor) Bottom() float64 {
	return a.Y + a.Radius
}
