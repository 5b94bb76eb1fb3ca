package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	empty = "◯"
	full  = "◉"

	// Spring physics parameters
	blinkAngularFrequency = 8.0
	blinkDampingRatio     = 0.7

	// Visual threshold for frame switching
	blinkFrameThreshold = 0.3

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

// Blink is an activity indicator that lights up on Pulse and fades out on a spring
type Blink struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	holdTicks int
	hold      int
}

// NewBlink creates a blink animator updated fps times per second.
// A pulse stays lit for about a third of a second.
func NewBlink(fps int) *Blink {
	if fps < 1 {
		fps = 1
	}

	holdTicks := fps / 3
	if holdTicks < 1 {
		holdTicks = 1
	}

	return &Blink{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), blinkAngularFrequency, blinkDampingRatio),
		target:    blinkPositionEmpty,
		holdTicks: holdTicks,
	}
}

// Pulse lights the indicator
func (b *Blink) Pulse() {
	b.target = blinkPositionFull
	b.position = blinkPositionFull
	b.hold = b.holdTicks
}

// Update advances the animation (called on each UI tick)
func (b *Blink) Update() {
	if b.hold > 0 {
		b.hold--
	} else {
		b.target = blinkPositionEmpty
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)
}

// Frame returns the current frame based on the spring position
func (b *Blink) Frame() string {
	if b.position < blinkFrameThreshold {
		return empty
	}

	return full
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the indicator is still visibly lit
func (b *Blink) IsActive() bool {
	return b.hold > 0 || b.position >= blinkFrameThreshold
}
