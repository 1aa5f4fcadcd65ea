package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/grid"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

func TestParse(t *testing.T) {
	lab, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 4, Y: 6}, lab.Start)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("...\n...")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Parse("")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 41, got)
}

func TestPart1StraightExit(t *testing.T) {
	got, err := Part1(".\n.\n^")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestPart1Loop(t *testing.T) {
	input := `.#..
...#
#^..
..#.`
	_, err := Part1(input)
	assert.True(t, errors.Is(err, errors.ErrCodeNoSolution))
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestLoopObstructionsRestoresMap(t *testing.T) {
	lab, err := Parse(sample)
	require.NoError(t, err)
	before := lab.Map.String()
	lab.LoopObstructions()
	assert.Equal(t, before, lab.Map.String())
}
