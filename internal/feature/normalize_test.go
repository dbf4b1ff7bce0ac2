package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bddtools/bddconv/internal/model"
)

func call(name string, args ...string) *model.Keyword {
	return &model.Keyword{
		Kind: model.KindKeyword,
		Call: &model.Call{Name: name, Args: args},
	}
}

func TestNormalizePlainKeyword(t *testing.T) {
	t.Parallel()

	lines := Normalize([]*model.Keyword{call("Open Browser", "chrome", "headless")})

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Type: "KEYWORD", Name: "Open Browser", Arguments: "chrome, headless"}, lines[0])
}

func TestNormalizeSetupTeardown(t *testing.T) {
	t.Parallel()

	setup := &model.Keyword{Kind: model.KindSetup, Call: &model.Call{Name: "Start", Args: []string{"fast"}}}
	teardown := &model.Keyword{Kind: model.KindTeardown, Call: &model.Call{Name: "Stop"}}

	lines := Normalize([]*model.Keyword{setup, teardown})

	require.Len(t, lines, 2)
	assert.Equal(t, Line{Type: "SETUP", Name: "Start", Arguments: "fast"}, lines[0])
	assert.Equal(t, Line{Type: "TEARDOWN", Name: "Stop"}, lines[1])
}

func TestNormalizeSkipsNilEntries(t *testing.T) {
	t.Parallel()

	lines := Normalize([]*model.Keyword{nil, call("Only"), nil})

	require.Len(t, lines, 1)
	assert.Equal(t, "Only", lines[0].Name)
}

func TestNormalizeAssignment(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindKeyword,
		Call: &model.Call{Name: "Get Value", Assign: []string{"x ="}},
	}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 1)
	assert.Equal(t, "x = Get Value", lines[0].Name)
}

func TestNormalizeMultipleAssignment(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindKeyword,
		Call: &model.Call{Name: "Split", Assign: []string{"${a} =", "${b}"}},
	}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 1)
	assert.Equal(t, "${a}, ${b} = Split", lines[0].Name)
}

func TestNormalizeDataTableRow(t *testing.T) {
	t.Parallel()

	for _, marker := range []string{"^", ">"} {
		lines := Normalize([]*model.Keyword{call(marker, "a", "b", "c")})

		require.Len(t, lines, 1)
		assert.Empty(t, lines[0].Name)
		assert.Equal(t, "\t| a | b | c |", lines[0].Arguments)
	}
}

// An assigned variable can turn a regular name into a row marker; the
// override applies to the display name, not the raw keyword name.
func TestNormalizeDataTableUsesDisplayName(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindKeyword,
		Call: &model.Call{Name: "^", Args: []string{"only"}, Assign: []string{"${x}"}},
	}

	lines := Normalize([]*model.Keyword{kw})

	// Display name is "${x} = ^", not a bare marker, so no override.
	require.Len(t, lines, 1)
	assert.Equal(t, "${x} = ^", lines[0].Name)
	assert.Equal(t, "only", lines[0].Arguments)
}

func TestNormalizeFor(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindFor,
		For: &model.ForLoop{
			Variables: []string{"${i}", "${j}"},
			Flavor:    "IN RANGE",
			Values:    []string{"1", "10"},
		},
	}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Type: "FOR", Name: "${i}, ${j} IN RANGE [ 1 | 10 ]"}, lines[0])
}

func TestNormalizeForEmptyValues(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindFor,
		For:  &model.ForLoop{Variables: []string{"${i}"}, Flavor: "IN"},
	}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 1)
	assert.Equal(t, "${i} IN [ ]", lines[0].Name)
}

func TestNormalizeWhile(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{Kind: model.KindWhile, While: &model.WhileLoop{Condition: "${x} < 10"}}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Type: "WHILE", Name: "${x} < 10"}, lines[0])
}

// IF and TRY roots flatten into one line per branch, in branch order,
// at the same level as surrounding siblings.
func TestNormalizeIfFlattensBranches(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindIf,
		Branches: []model.Branch{
			{Type: model.BranchIf, Condition: "${x} > 1"},
			{Type: model.BranchElseIf, Condition: "${x} > 0"},
			{Type: model.BranchElse},
		},
	}

	lines := Normalize([]*model.Keyword{call("Before"), kw, call("After")})

	require.Len(t, lines, 5)
	assert.Equal(t, "Before", lines[0].Name)
	assert.Equal(t, Line{Type: "IF", Name: "${x} > 1"}, lines[1])
	assert.Equal(t, Line{Type: "ELSE IF", Name: "${x} > 0"}, lines[2])
	assert.Equal(t, Line{Type: "ELSE"}, lines[3])
	assert.Equal(t, "After", lines[4].Name)
}

func TestNormalizeTryFlattensBranches(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind: model.KindTry,
		Branches: []model.Branch{
			{Type: model.BranchTry},
			{Type: model.BranchExcept, Patterns: []string{"*Timeout*", "*Error*"}, Variable: "${err}"},
			{Type: model.BranchExcept, Patterns: []string{"other"}},
			{Type: model.BranchFinally},
		},
	}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 4)
	assert.Equal(t, Line{Type: "TRY"}, lines[0])
	assert.Equal(t, Line{Type: "EXCEPT", Name: "*Timeout*, *Error* AS ${err}"}, lines[1])
	assert.Equal(t, Line{Type: "EXCEPT", Name: "other"}, lines[2])
	assert.Equal(t, Line{Type: "FINALLY"}, lines[3])
}

func TestNormalizeExceptWithoutPatterns(t *testing.T) {
	t.Parallel()

	kw := &model.Keyword{
		Kind:     model.KindTry,
		Branches: []model.Branch{{Type: model.BranchExcept, Variable: "${err}"}},
	}

	lines := Normalize([]*model.Keyword{kw})

	require.Len(t, lines, 1)
	assert.Equal(t, "AS ${err}", lines[0].Name)
}
