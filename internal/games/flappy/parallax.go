package flappy

import "math"

// Parallax is the cosmetic background scroll. It keeps moving in every
// state and never influences gameplay.
type Parallax struct {
	Offset float64
	speed  float64
}

// NewParallax creates a parallax layer scrolling at speed units per tick.
func NewParallax(speed float64) *Parallax {
	return &Parallax{speed: speed}
}

// Update scrolls one tick and wraps the offset into (-tileWidth, 0].
// A non-positive tile width disables wrapping.
func (p *Parallax) Update(tileWidth float64) {
	p.Offset -= p.speed
	if tileWidth > 0 {
		p.Offset = math.Mod(p.Offset, tileWidth)
	}
}
