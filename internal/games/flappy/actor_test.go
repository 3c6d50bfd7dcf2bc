package flappy

import (
	"math"
	"testing"
	"time"
)

func TestActorFlap(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)

	a.Flap()

	if a.Velocity != cfg.Physics.FlapImpulse {
		t.Errorf("Flap velocity = %v, expected %v", a.Velocity, cfg.Physics.FlapImpulse)
	}
	if a.Tilt != cfg.Physics.TiltUp() {
		t.Errorf("Flap tilt = %v, expected %v", a.Tilt, cfg.Physics.TiltUp())
	}
}

func TestActorIntegrateGravity(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)

	for i := 0; i < 20; i++ {
		prevV, prevY := a.Velocity, a.Y
		if a.Integrate(10000) {
			t.Fatal("Actor should not reach a distant floor")
		}
		if a.Velocity != prevV+cfg.Physics.Gravity {
			t.Fatalf("tick %d: velocity = %v, expected %v", i, a.Velocity, prevV+cfg.Physics.Gravity)
		}
		if a.Y != prevY+a.Velocity {
			t.Fatalf("tick %d: y = %v, expected %v", i, a.Y, prevY+a.Velocity)
		}
	}
}

func TestActorTilt(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)

	a.Flap()
	a.Integrate(10000)
	if a.Tilt != cfg.Physics.TiltUp() {
		t.Errorf("Rising actor should stay nose-up, got %v", a.Tilt)
	}

	// Fall long enough to hit the clamp
	prev := a.Tilt
	for i := 0; i < 200; i++ {
		a.Integrate(1e9)
		if a.Velocity >= 0 && a.Tilt < prev {
			t.Fatalf("Tilt should not decrease while falling: %v -> %v", prev, a.Tilt)
		}
		prev = a.Tilt
	}
	if a.Tilt != cfg.Physics.TiltMax() {
		t.Errorf("Tilt should clamp at %v, got %v", cfg.Physics.TiltMax(), a.Tilt)
	}

	// Only a flap brings the nose back up
	a.Flap()
	if a.Tilt != cfg.Physics.TiltUp() {
		t.Errorf("Flap should reset tilt to nose-up, got %v", a.Tilt)
	}
}

func TestActorFloorClamp(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)
	a.Y = 580
	a.Velocity = 10

	if !a.Integrate(600) {
		t.Fatal("Integrate should report floor contact")
	}
	if a.Y != 600-a.Radius {
		t.Errorf("Y should clamp to floor minus radius, got %v", a.Y)
	}
}

func TestActorFloorTouchExact(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)
	a.Velocity = -cfg.Physics.Gravity // net zero motion this tick
	a.Y = 585

	if !a.Integrate(600) {
		t.Error("Touching the floor exactly should count as contact")
	}
}

func TestActorBob(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)
	a.Velocity = 3

	for ms := 0; ms < 5000; ms += 17 {
		a.Bob(time.Duration(ms) * time.Millisecond)
		if math.Abs(a.Y-cfg.Actor.RestY) > cfg.Actor.BobAmplitude+1e-9 {
			t.Fatalf("Bob at %dms left the band: y=%v", ms, a.Y)
		}
	}
	if a.Velocity != 3 {
		t.Errorf("Bob should not touch velocity, got %v", a.Velocity)
	}

	a.Bob(0)
	if a.Y != cfg.Actor.RestY {
		t.Errorf("Bob(0) should be the rest position, got %v", a.Y)
	}
}

func TestBobYIsPure(t *testing.T) {
	at := 1234 * time.Millisecond
	if BobY(150, 5, 3, at) != BobY(150, 5, 3, at) {
		t.Error("BobY should be a pure function of its inputs")
	}
	// Quarter period of sin at rate 2 rad/s is pi/4 seconds
	secs := math.Pi / 4
	quarter := time.Duration(secs * float64(time.Second))
	if got := BobY(150, 5, 2, quarter); math.Abs(got-155) > 1e-6 {
		t.Errorf("BobY at quarter period = %v, expected 155", got)
	}
}

func TestActorReset(t *testing.T) {
	cfg := testConfig()
	a := NewActor(cfg)
	a.Flap()
	a.Integrate(10000)

	a.Reset()

	if a.Y != cfg.Actor.RestY || a.Velocity != 0 || a.Tilt != 0 {
		t.Errorf("Reset should restore rest state, got y=%v v=%v tilt=%v", a.Y, a.Velocity, a.Tilt)
	}
}
