package main

import (
	"io"
	"testing"

	"github.com/32bitkid/subpixel"
	"github.com/32bitkid/subpixel/screen"
)

func TestParseArgs(t *testing.T) {
	c, err := parseArgs([]string{
		"subpixelfy", "-s", "20", "-m", "chroma", "-k", "lanczos",
		"-c", "horizontal", "--edge", "drop", "-o", "out.png", "-w", "--bleed", "2", "in.jpg",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.input != "in.jpg" || c.output != "out.png" {
		t.Errorf("unexpected paths %q %q", c.input, c.output)
	}
	cfg := c.config
	if cfg.Scale != 20 || cfg.Mode != screen.ModeChroma || cfg.Kernel != screen.KernelLanczos {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Comparison != subpixel.CompareHorizontal || cfg.Edge != screen.EdgeDrop {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.Widen || cfg.Bleed != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseArgsDefaults(t *testing.T) {
	c, err := parseArgs([]string{"subpixelfy", "in.jpg"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.config != subpixel.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", c.config)
	}
}

func TestParseArgsCrop(t *testing.T) {
	c, err := parseArgs([]string{"subpixelfy", "-C", "--crop-level", "30", "in.jpg"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !c.config.Crop || c.config.ForegroundLevel != 30 {
		t.Errorf("unexpected config %+v", c.config)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"subpixelfy"}},
		{"two inputs", []string{"subpixelfy", "a.jpg", "b.jpg"}},
		{"bad mode", []string{"subpixelfy", "-m", "cmyk", "a.jpg"}},
		{"bad kernel", []string{"subpixelfy", "-k", "sinc", "a.jpg"}},
		{"bad scale", []string{"subpixelfy", "-s", "0", "a.jpg"}},
		{"unknown flag", []string{"subpixelfy", "--nope", "a.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args, io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	c, err := parseArgs([]string{"subpixelfy", "-h"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !c.help {
		t.Error("expected help")
	}
}
