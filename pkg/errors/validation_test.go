package errors

import (
	"strings"
	"testing"
)

func TestValidateNotation(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"mermaid", false},
		{"plantuml", false},
		{"dot", false},
		{"", true},
		{"Mermaid", true},
		{"graphviz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotation(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotation(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidNotation {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidNotation)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"text", false},
		{"svg", false},
		{"png", false},
		{"", true},
		{"pdf", true},
		{"SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateScopePolicy(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"indent", false},
		{"brace", false},
		{"", true},
		{"curly", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScopePolicy(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScopePolicy(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateModelPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "drone.sysml", false},
		{"nested path", "models/drone.sysml", false},
		{"empty", "", true},
		{"null byte", "drone\x00.sysml", true},
		{"control character", "drone\n.sysml", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModelPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateModelExtension(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"sysml", "drone.sysml", false},
		{"decimal", "drone.decimal", false},
		{"json tree", "drone.json", false},
		{"uppercase ok", "DRONE.SYSML", false},
		{"no extension", "drone", true},
		{"wrong extension", "drone.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelExtension(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModelExtension(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
