package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Expected scene file written, got %v", err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, `
width = 60
height = 20
fps = 24
gravity = 12.5

[[emitters]]
x = 30
y = 18
spawn_rate = 25
direction = -1.5707963
char_sequence = "@*+:. "
drag = 0.97
`)

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("Expected scene to load, got %v", err)
	}
	if scene.Width != 60 || scene.Height != 20 {
		t.Errorf("Expected 60x20, got %dx%d", scene.Width, scene.Height)
	}
	if scene.FPS != 24 || scene.Gravity != 12.5 {
		t.Errorf("Expected fps 24 gravity 12.5, got %v %v", scene.FPS, scene.Gravity)
	}
	if len(scene.Emitters) != 1 {
		t.Fatalf("Expected 1 emitter, got %d", len(scene.Emitters))
	}

	e := scene.Emitters[0].Build()
	if e.X != 30 || e.Y != 18 {
		t.Errorf("Expected emitter at (30, 18), got (%v, %v)", e.X, e.Y)
	}
	if e.SpawnRate != 25 {
		t.Errorf("Expected spawn rate 25, got %v", e.SpawnRate)
	}
	if math.Abs(e.Direction+math.Pi/2) > 1e-6 {
		t.Errorf("Expected upward direction, got %v", e.Direction)
	}
	if string(e.CharSequence) != "@*+:. " {
		t.Errorf("Expected char sequence preserved, got %q", string(e.CharSequence))
	}
	if !e.Fade {
		t.Errorf("Expected fade implied by char sequence")
	}
	if e.Drag != 0.97 {
		t.Errorf("Expected drag 0.97, got %v", e.Drag)
	}
}

func TestLoadDefaults(t *testing.T) {
	scene, err := Load(writeScene(t, ``))
	if err != nil {
		t.Fatalf("Expected empty scene to load, got %v", err)
	}
	if scene.Width != 80 || scene.Height != 24 || scene.FPS != 30 {
		t.Errorf("Expected default canvas shape, got %dx%d @ %v", scene.Width, scene.Height, scene.FPS)
	}
	if scene.MaxParticles <= 0 {
		t.Errorf("Expected positive default particle cap, got %d", scene.MaxParticles)
	}
}

func TestBuildLeavesDefaults(t *testing.T) {
	e := EmitterSpec{X: 1, Y: 2}.Build()
	if e.SpeedMin <= 0 || e.SpeedMax <= e.SpeedMin {
		t.Errorf("Expected default speed range, got %v..%v", e.SpeedMin, e.SpeedMax)
	}
	if e.Char != '*' {
		t.Errorf("Expected default char '*', got %q", e.Char)
	}
	if !e.Active {
		t.Errorf("Expected emitter active by default")
	}
}

func TestLoadRejectsBadScenes(t *testing.T) {
	cases := []string{
		"width = -1",
		"fps = 0\nwidth = 10\nheight = 10",
		"width = 10\nheight = 10\n[[emitters]]\ndrag = 1.5",
		"not toml ===",
	}
	for _, content := range cases {
		if _, err := Load(writeScene(t, content)); err == nil {
			t.Errorf("Expected error for scene %q", content)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/scene.toml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
