package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/sysml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decimal.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Parser.ScopePolicy != "indent" {
		t.Errorf("default scope_policy = %q, want indent", cfg.Parser.ScopePolicy)
	}
	if got := cfg.Render.Mermaid.Function.Width; got != 120 {
		t.Errorf("mermaid function width = %d, want 120", got)
	}
	if got := cfg.Render.Dot.OrderFrom; got != "DroneFunctions" {
		t.Errorf("dot order_from = %q, want DroneFunctions", got)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Error("empty path should return defaults unchanged")
	}
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	path := writeConfig(t, `
[parser]
scope_policy = "brace"

[render.mermaid.function]
width = 200
top_height = 20
bottom_height = 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Parser.ScopePolicy != "brace" {
		t.Errorf("scope_policy = %q, want brace", cfg.Parser.ScopePolicy)
	}
	if got := cfg.Render.Mermaid.Function.Width; got != 200 {
		t.Errorf("overridden width = %d, want 200", got)
	}
	// Untouched sections keep their defaults.
	if got := cfg.Render.Mermaid.Component.Width; got != 150 {
		t.Errorf("component width = %d, want default 150", got)
	}
	if got := cfg.Render.PlantUML.DevelopmentPrefix; got != "DroneDevelopment" {
		t.Errorf("development_prefix = %q, want default", got)
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	path := writeConfig(t, `
[parser]
scope_policy = "curly"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown scope_policy")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "[render.dot\norder_from = ")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestScopePolicyMapping(t *testing.T) {
	tests := []struct {
		name string
		want sysml.ScopePolicy
	}{
		{"indent", sysml.PolicyIndent},
		{"brace", sysml.PolicyBrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Parser.ScopePolicy = tt.name
			if got := cfg.ScopePolicy(); got != tt.want {
				t.Errorf("ScopePolicy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRendererOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.Dot.Actor.Width = 99
	cfg.Render.PlantUML.DevelopmentPrefix = ""

	if got := cfg.DotOptions().Actor.Width; got != 99 {
		t.Errorf("dot actor width = %d, want 99", got)
	}
	if got := cfg.PlantUMLOptions().DevelopmentPrefix; got != "" {
		t.Errorf("development prefix = %q, want empty (reordering disabled)", got)
	}
	if got := cfg.MermaidOptions().Function.TopHeight; got != 15 {
		t.Errorf("mermaid function top height = %d, want 15", got)
	}
}
