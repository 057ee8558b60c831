// Package sysml parses the DeciMaL textual modeling notation into a
// [model.Node] tree.
//
// The notation is line oriented and indentation based. Four declaration
// forms exist:
//
//	package <Name> [as <Alias>]
//	part <Name> [as <Alias>] : <Type>
//	actor <Name> [as <Alias>]
//	description = "<text>"
//
// Leading whitespace determines nesting; there are no required closing
// markers. Trailing curly braces are tolerated and carry no meaning under
// the default scope policy (see [ScopePolicy]).
//
// Lines that match none of the four forms are skipped and reported as
// [Warning] values. Parsing never fails on malformed input; the worst
// outcome is a partial tree plus accumulated warnings.
package sysml

import (
	"regexp"
	"strings"
)

// DeclKind identifies which declaration form a line matched.
type DeclKind int

const (
	// DeclUnrecognized marks a line that matched no declaration form.
	DeclUnrecognized DeclKind = iota
	DeclPackage
	DeclPart
	DeclActor
	DeclDescription
)

// String returns a short name for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclPackage:
		return "package"
	case DeclPart:
		return "part"
	case DeclActor:
		return "actor"
	case DeclDescription:
		return "description"
	}
	return "unrecognized"
}

// Decl is the result of classifying a single line.
type Decl struct {
	Kind  DeclKind
	Name  string // display name; quotes stripped, outer whitespace trimmed
	Alias string // optional short identifier
	Type  string // part type annotation (DeclPart only)
	Text  string // description payload (DeclDescription only)
}

// Keywords are case-sensitive. Package and actor names may contain letters,
// digits, and internal whitespace, optionally double-quoted; part names are
// single tokens but may carry array-style bracket suffixes. The name groups
// are lazy so a trailing "as <alias>" clause is not swallowed into the name.
var (
	rePackage     = regexp.MustCompile(`^package\s+("?[A-Za-z0-9\s]+?"?)(?:\s+as\s+(\w+))?$`)
	rePart        = regexp.MustCompile(`^part\s+([\w\[\]]+)(?:\s+as\s+(\w+))?\s*:\s*(\w+)$`)
	reActor       = regexp.MustCompile(`^actor\s+("?[A-Za-z0-9\s]+?"?)(?:\s+as\s+(\w+))?$`)
	reDescription = regexp.MustCompile(`^description\s*=\s*"([^"]*)"`)
)

// Classify determines which declaration form line matches and extracts its
// fields. Leading whitespace and trailing scope punctuation ({, }) are
// ignored. Blank lines are the caller's concern and classify as
// DeclUnrecognized here.
func Classify(line string) Decl {
	content := trimScopeMarks(line)

	if m := rePackage.FindStringSubmatch(content); m != nil {
		return Decl{Kind: DeclPackage, Name: cleanName(m[1]), Alias: m[2]}
	}
	if m := rePart.FindStringSubmatch(content); m != nil {
		return Decl{Kind: DeclPart, Name: m[1], Alias: m[2], Type: m[3]}
	}
	if m := reActor.FindStringSubmatch(content); m != nil {
		return Decl{Kind: DeclActor, Name: cleanName(m[1]), Alias: m[2]}
	}
	if m := reDescription.FindStringSubmatch(content); m != nil {
		return Decl{Kind: DeclDescription, Text: strings.TrimSpace(m[1])}
	}
	return Decl{Kind: DeclUnrecognized}
}

// trimScopeMarks strips surrounding whitespace and trailing brace
// punctuation from a raw line, leaving only declaration content.
func trimScopeMarks(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimRight(s, "{}")
	return strings.TrimSpace(s)
}

// cleanName strips optional surrounding quotes and outer whitespace from a
// package or actor name.
func cleanName(s string) string {
	return strings.TrimSpace(strings.Trim(s, `"`))
}

// braceOnly reports whether a line consists solely of scope punctuation,
// such as a closing "}" on its own line.
func braceOnly(line string) bool {
	s := strings.TrimSpace(line)
	return s != "" && strings.Trim(s, "{}") == ""
}
