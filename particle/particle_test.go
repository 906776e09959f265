package particle

import (
	"testing"
)

func TestParticlePhysicsSteps(t *testing.T) {
	p := Particle{
		X: 0, Y: 0,
		Lifetime:     1,
		MaxLifetime:  1,
		GravityScale: 1,
		Drag:         1,
	}

	p.Update(0.5, 10)
	if p.VY != 5 {
		t.Errorf("Expected vy == 5 after step 1, got %v", p.VY)
	}
	if p.Y != 2.5 {
		t.Errorf("Expected y == 2.5 after step 1, got %v", p.Y)
	}
	if p.Lifetime != 0.5 {
		t.Errorf("Expected lifetime 0.5 after step 1, got %v", p.Lifetime)
	}
	if !p.Alive() {
		t.Error("Expected alive after step 1")
	}

	p.Update(0.5, 10)
	if p.VY != 10 {
		t.Errorf("Expected vy == 10 after step 2, got %v", p.VY)
	}
	if p.Y != 7.5 {
		t.Errorf("Expected y == 7.5 after step 2, got %v", p.Y)
	}
	if p.Lifetime != 0 {
		t.Errorf("Expected lifetime 0 after step 2, got %v", p.Lifetime)
	}
	if p.Alive() {
		t.Error("Expected dead after step 2")
	}
}

func TestParticleDragDampsVelocity(t *testing.T) {
	p := Particle{VX: 10, VY: -10, Lifetime: 1, MaxLifetime: 1, Drag: 0.5}
	p.Update(1, 0)
	if p.VX != 5 || p.VY != -5 {
		t.Errorf("Expected drag-halved velocity, got (%v, %v)", p.VX, p.VY)
	}
}

func TestBuoyantParticleRises(t *testing.T) {
	p := Particle{Lifetime: 1, MaxLifetime: 1, GravityScale: -0.5, Drag: 1}
	p.Update(1, 20)
	if p.VY >= 0 {
		t.Errorf("Expected negative vy for buoyant particle, got %v", p.VY)
	}
}

func TestCurrentCharFades(t *testing.T) {
	p := Particle{
		Lifetime:     1,
		MaxLifetime:  1,
		Char:         '*',
		CharSequence: []rune("@*+. "),
		Fade:         true,
	}

	if got := p.CurrentChar(); got != '@' {
		t.Errorf("Expected brightest char at full life, got %q", got)
	}

	p.Lifetime = 0.5
	if got := p.CurrentChar(); got != '+' {
		t.Errorf("Expected middle char at half life, got %q", got)
	}

	p.Lifetime = 0
	if got := p.CurrentChar(); got != ' ' {
		t.Errorf("Expected dimmest char at zero life, got %q", got)
	}
}

func TestCurrentCharFixedWithoutFade(t *testing.T) {
	p := Particle{
		Lifetime:     0.2,
		MaxLifetime:  1,
		Char:         '*',
		CharSequence: []rune("@*+. "),
		Fade:         false,
	}
	if got := p.CurrentChar(); got != '*' {
		t.Errorf("Expected fixed char when fade disabled, got %q", got)
	}

	p.Fade = true
	p.CharSequence = nil
	if got := p.CurrentChar(); got != '*' {
		t.Errorf("Expected fixed char without a sequence, got %q", got)
	}
}

func TestLifeRatio(t *testing.T) {
	p := Particle{Lifetime: 0.25, MaxLifetime: 1}
	if got := p.LifeRatio(); got != 0.25 {
		t.Errorf("Expected ratio 0.25, got %v", got)
	}

	p.Lifetime = 2 // over max clamps to 1
	if got := p.LifeRatio(); got != 1 {
		t.Errorf("Expected ratio clamped to 1, got %v", got)
	}

	p.MaxLifetime = 0
	if got := p.LifeRatio(); got != 0 {
		t.Errorf("Expected ratio 0 with zero max, got %v", got)
	}
}
