package feature

import (
	"strings"

	"github.com/bddtools/bddconv/internal/model"
)

// Row-continuation markers used by the data-driven table convention.
// A keyword named after one of these carries a table row in its args.
const (
	rowMarkerCaret = "^"
	rowMarkerArrow = ">"
)

// Normalize flattens a keyword body into an ordered sequence of line
// records. Control-flow blocks expand into one record per branch at the
// same level as their siblings; nil entries are skipped.
func Normalize(body []*model.Keyword) []Line {
	var lines []Line
	for _, kw := range body {
		if kw == nil {
			continue
		}
		switch kw.Kind {
		case model.KindSetup:
			lines = append(lines, callLine(kw.Call, "SETUP"))
		case model.KindTeardown:
			lines = append(lines, callLine(kw.Call, "TEARDOWN"))
		case model.KindFor:
			lines = append(lines, forLine(kw.For))
		case model.KindWhile:
			lines = append(lines, Line{Type: "WHILE", Name: kw.While.Condition})
		case model.KindIf:
			lines = append(lines, ifLines(kw.Branches)...)
		case model.KindTry:
			lines = append(lines, tryLines(kw.Branches)...)
		default:
			lines = append(lines, callLine(kw.Call, "KEYWORD"))
		}
	}
	return lines
}

// callLine builds the record for a plain, setup, or teardown call.
// Row-continuation markers render as a pipe-delimited table row with an
// empty name instead of the usual name plus comma-joined args.
func callLine(call *model.Call, lineType string) Line {
	name := displayName(call)
	if name == rowMarkerCaret || name == rowMarkerArrow {
		return Line{Type: lineType, Arguments: dataRow(call.Args)}
	}
	return Line{
		Type:      lineType,
		Name:      name,
		Arguments: strings.Join(call.Args, ", "),
	}
}

// displayName prefixes the keyword name with its assigned variables,
// each stripped of the trailing "=" that the source format allows.
func displayName(call *model.Call) string {
	if len(call.Assign) == 0 {
		return call.Name
	}
	assigned := make([]string, len(call.Assign))
	for i, a := range call.Assign {
		assigned[i] = strings.TrimRight(a, "= ")
	}
	return strings.Join(assigned, ", ") + " = " + call.Name
}

func dataRow(args []string) string {
	return "\t| " + strings.Join(args, " | ") + " |"
}

func forLine(loop *model.ForLoop) Line {
	name := strings.Join(loop.Variables, ", ") + " " + loop.Flavor + " " + valueList(loop.Values)
	return Line{Type: "FOR", Name: name}
}

// valueList renders loop values in the "[ a | b ]" list form.
func valueList(values []string) string {
	if len(values) == 0 {
		return "[ ]"
	}
	return "[ " + strings.Join(values, " | ") + " ]"
}

func ifLines(branches []model.Branch) []Line {
	lines := make([]Line, 0, len(branches))
	for _, branch := range branches {
		lines = append(lines, Line{Type: branch.Type, Name: branch.Condition})
	}
	return lines
}

func tryLines(branches []model.Branch) []Line {
	lines := make([]Line, 0, len(branches))
	for _, branch := range branches {
		var name string
		if branch.Type == model.BranchExcept {
			name = exceptName(branch)
		}
		lines = append(lines, Line{Type: branch.Type, Name: name})
	}
	return lines
}

// exceptName renders "pattern1, pattern2 AS ${var}", dropping the AS
// clause when no variable captures the error.
func exceptName(branch model.Branch) string {
	name := strings.Join(branch.Patterns, ", ")
	if branch.Variable != "" {
		name += " AS " + branch.Variable
	}
	return strings.TrimSpace(name)
}
