// Package config loads renderer and parser settings from TOML files.
//
// Every field has a working default, so a missing or partial file is never
// an error by itself. Loading overlays the file's values on top of the
// defaults, which keeps config files short: they only name what differs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/render/dot"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render/mermaid"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render/plantuml"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/sysml"
)

// Config is the full settings tree.
type Config struct {
	Parser Parser `toml:"parser"`
	Render Render `toml:"render"`
}

// Parser holds scope-resolution settings.
type Parser struct {
	// ScopePolicy is "indent" or "brace".
	ScopePolicy string `toml:"scope_policy"`
}

// Render groups per-notation settings.
type Render struct {
	Mermaid  Mermaid  `toml:"mermaid"`
	PlantUML PlantUML `toml:"plantuml"`
	Dot      Dot      `toml:"dot"`
}

// Box is an HTML-table label geometry in points.
type Box struct {
	Width        int `toml:"width"`
	TopHeight    int `toml:"top_height"`
	BottomHeight int `toml:"bottom_height"`
}

// Mermaid holds flowchart settings.
type Mermaid struct {
	Function  Box `toml:"function"`
	Component Box `toml:"component"`
}

// PlantUML holds containment-diagram settings.
type PlantUML struct {
	// DevelopmentPrefix marks packages whose direct children are reordered
	// so that function packages come first.
	DevelopmentPrefix string `toml:"development_prefix"`

	// FunctionsPrefix marks the children hoisted by that reordering.
	FunctionsPrefix string `toml:"functions_prefix"`
}

// Dot holds cluster-graph settings.
type Dot struct {
	Function  Box `toml:"function"`
	Component Box `toml:"component"`
	Actor     Box `toml:"actor"`

	// OrderFrom and OrderTo name the endpoints of the invisible layout
	// ordering edge.
	OrderFrom string `toml:"order_from"`
	OrderTo   string `toml:"order_to"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Parser: Parser{ScopePolicy: "indent"},
		Render: Render{
			Mermaid: Mermaid{
				Function:  Box{Width: 120, TopHeight: 15, BottomHeight: 30},
				Component: Box{Width: 150, TopHeight: 10, BottomHeight: 40},
			},
			PlantUML: PlantUML{
				DevelopmentPrefix: plantuml.DefaultDevelopmentPrefix,
				FunctionsPrefix:   plantuml.DefaultFunctionsPrefix,
			},
			Dot: Dot{
				Function:  Box{Width: 120, TopHeight: 15, BottomHeight: 30},
				Component: Box{Width: 150, TopHeight: 10, BottomHeight: 40},
				Actor:     Box{Width: 120, TopHeight: 10, BottomHeight: 40},
				OrderFrom: dot.DefaultOrderFrom,
				OrderTo:   dot.DefaultOrderTo,
			},
		},
	}
}

// Load reads a TOML file and overlays it on the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Parser.ScopePolicy {
	case "indent", "brace":
		return nil
	default:
		return fmt.Errorf("unknown scope_policy %q (want \"indent\" or \"brace\")", c.Parser.ScopePolicy)
	}
}

// ScopePolicy maps the configured policy name onto the parser's enum.
func (c Config) ScopePolicy() sysml.ScopePolicy {
	if c.Parser.ScopePolicy == "brace" {
		return sysml.PolicyBrace
	}
	return sysml.PolicyIndent
}

// MermaidOptions builds flowchart renderer options from the settings.
func (c Config) MermaidOptions() mermaid.Options {
	return mermaid.Options{
		Function:  mermaid.Compartments(c.Render.Mermaid.Function),
		Component: mermaid.Compartments(c.Render.Mermaid.Component),
	}
}

// PlantUMLOptions builds containment renderer options from the settings.
func (c Config) PlantUMLOptions() plantuml.Options {
	return plantuml.Options{
		DevelopmentPrefix: c.Render.PlantUML.DevelopmentPrefix,
		FunctionsPrefix:   c.Render.PlantUML.FunctionsPrefix,
	}
}

// DotOptions builds cluster-graph renderer options from the settings.
func (c Config) DotOptions() dot.Options {
	return dot.Options{
		Function:  dot.Compartments(c.Render.Dot.Function),
		Component: dot.Compartments(c.Render.Dot.Component),
		Actor:     dot.Compartments(c.Render.Dot.Actor),
		OrderFrom: c.Render.Dot.OrderFrom,
		OrderTo:   c.Render.Dot.OrderTo,
	}
}
