package path_test

import (
	"testing"

	"github.com/katalvlaran/icepath/grid"
	"github.com/katalvlaran/icepath/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(s)
	require.NoError(t, err)

	return g
}

// TestPath_StartsAtOrigin checks the initial cursor state.
func TestPath_StartsAtOrigin(t *testing.T) {
	p := path.New(mustParse(t, "..\n..\n"))
	assert.Zero(t, p.FinalRow())
	assert.Zero(t, p.FinalColumn())
	assert.Zero(t, p.Len())
	assert.Empty(t, p.Steps())
	assert.False(t, p.AtGoal())
}

// TestPath_Walk follows a legal route to the goal and records it.
func TestPath_Walk(t *testing.T) {
	g := mustParse(t, `
.X.
...
X..
`)
	p := path.New(g)

	assert.False(t, p.IsStepValid(path.StepRight), "iceberg at (0,1)")
	require.True(t, p.IsStepValid(path.StepDown))
	require.NoError(t, p.AddStep(path.StepDown))
	require.NoError(t, p.AddStep(path.StepRight))
	require.NoError(t, p.AddStep(path.StepRight))
	assert.False(t, p.IsStepValid(path.StepRight), "right edge")
	require.NoError(t, p.AddStep(path.StepDown))
	assert.False(t, p.IsStepValid(path.StepDown), "bottom edge")

	assert.Equal(t, 2, p.FinalRow())
	assert.Equal(t, 2, p.FinalColumn())
	assert.True(t, p.AtGoal())
	assert.Equal(t, []path.Step{path.StepDown, path.StepRight, path.StepRight, path.StepDown}, p.Steps())
	assert.Equal(t, 4, p.Len())
}

// TestPath_InvalidStepLeavesCursor verifies AddStep refuses illegal moves.
func TestPath_InvalidStepLeavesCursor(t *testing.T) {
	p := path.New(mustParse(t, ".X\n..\n"))

	err := p.AddStep(path.StepRight)
	assert.ErrorIs(t, err, path.ErrInvalidStep)
	assert.Zero(t, p.FinalColumn())
	assert.Zero(t, p.Len())

	assert.False(t, p.IsStepValid(path.Step(9)))
	assert.ErrorIs(t, p.AddStep(path.Step(9)), path.ErrInvalidStep)
}

// TestPath_StepsIsCopy ensures callers cannot rewrite history.
func TestPath_StepsIsCopy(t *testing.T) {
	p := path.New(mustParse(t, "..\n"))
	require.NoError(t, p.AddStep(path.StepRight))

	s := p.Steps()
	s[0] = path.StepDown
	assert.Equal(t, []path.Step{path.StepRight}, p.Steps())
}

// TestStep_String covers all names.
func TestStep_String(t *testing.T) {
	assert.Equal(t, "down", path.StepDown.String())
	assert.Equal(t, "right", path.StepRight.String())
	assert.Equal(t, "Step(7)", path.Step(7).String())
}

// TestPath_SingleCell is already at the goal.
func TestPath_SingleCell(t *testing.T) {
	p := path.New(mustParse(t, ".\n"))
	assert.True(t, p.AtGoal())
	assert.False(t, p.IsStepValid(path.StepDown))
	assert.False(t, p.IsStepValid(path.StepRight))
}
