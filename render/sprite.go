package render

import (
	"time"

	"github.com/lixenwraith/cinder/ease"
	"github.com/lixenwraith/cinder/vmath"
)

// Sprite is a multi-frame animated object drawn onto a canvas at a
// float position. Frames are fixed-size grids built at construction
// and immutable afterwards.
type Sprite struct {
	frames []*Buffer

	X, Y   float64
	VX, VY float64

	FrameIndex int
	FrameDelay int // updates between frame advances
	Visible    bool

	frameCounter int
}

// NewSprite builds a sprite from multi-line frame strings
func NewSprite(frames []string, x, y float64) *Sprite {
	bufs := make([]*Buffer, len(frames))
	for i, f := range frames {
		bufs[i] = FromString(f)
	}
	return &Sprite{
		frames:     bufs,
		X:          x,
		Y:          y,
		FrameDelay: 1,
		Visible:    true,
	}
}

// Width returns the frame width, zero without frames
func (s *Sprite) Width() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[0].Width()
}

// Height returns the frame height, zero without frames
func (s *Sprite) Height() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[0].Height()
}

// Update advances position by velocity and cycles the frame index
// every FrameDelay calls
func (s *Sprite) Update() {
	s.X += s.VX
	s.Y += s.VY

	if len(s.frames) == 0 {
		return
	}
	s.frameCounter++
	if s.frameCounter >= s.FrameDelay {
		s.frameCounter = 0
		s.FrameIndex = (s.FrameIndex + 1) % len(s.frames)
	}
}

// Draw overlays the current frame at the truncated integer position,
// skipping the transparent rune
func (s *Sprite) Draw(c *Canvas, transparent rune) {
	if !s.Visible || len(s.frames) == 0 {
		return
	}
	c.OverlayBuffer(s.frames[s.FrameIndex], int(s.X), int(s.Y), transparent)
}

// MoveTo creates a one-shot tween moving the sprite to (x, y)
func (s *Sprite) MoveTo(x, y float64, duration time.Duration, easing string) *Motion {
	return &Motion{
		sprite:   s,
		targetX:  x,
		targetY:  y,
		duration: duration,
		easing:   ease.ByName(easing),
		now:      time.Now,
	}
}

// Motion is a one-shot position tween bound to a single sprite.
// Created per tween, discarded when complete or replaced.
type Motion struct {
	sprite   *Sprite
	startX   float64
	startY   float64
	targetX  float64
	targetY  float64
	duration time.Duration
	easing   ease.Func

	startTime time.Time
	Complete  bool

	now func() time.Time // test hook
}

// Start anchors the interpolation origin at the sprite's current
// position. Restarting mid-flight re-anchors without a teleport
// discontinuity.
func (m *Motion) Start() {
	m.startTime = m.now()
	m.startX = m.sprite.X
	m.startY = m.sprite.Y
	m.Complete = false
}

// Update moves the sprite along the eased path, reporting completion
func (m *Motion) Update() bool {
	if m.startTime.IsZero() {
		m.Start()
	}

	t := 1.0
	if m.duration > 0 {
		elapsed := m.now().Sub(m.startTime)
		t = vmath.Clamp(float64(elapsed)/float64(m.duration), 0, 1)
	}
	eased := m.easing(t)

	m.sprite.X = vmath.Lerp(m.startX, m.targetX, eased)
	m.sprite.Y = vmath.Lerp(m.startY, m.targetY, eased)

	m.Complete = t >= 1
	return m.Complete
}
