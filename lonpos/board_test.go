package lonpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPiece(t *testing.T, name string, cells []Coordinate) *Piece {
	t.Helper()
	pieces, err := CompilePieces([]PieceDef{{Name: name, Cells: cells}}, false)
	require.NoError(t, err)
	return pieces[0]
}

func TestBoardDefValidate(t *testing.T) {
	assert.ErrorIs(t, BoardDef{Width: 0, Height: 3}.Validate(), ErrInvalidBoardConfiguration)
	assert.ErrorIs(t, BoardDef{Width: 3, Height: -1}.Validate(), ErrInvalidBoardConfiguration)
	assert.ErrorIs(t,
		BoardDef{Width: 2, Height: 2, Holes: []Coordinate{{5, 0}}}.Validate(),
		ErrInvalidBoardConfiguration)
	assert.NoError(t, BoardDef{Width: 2, Height: 2, Holes: []Coordinate{{1, 1}}}.Validate())
}

func TestNewBoardCountsOpenCells(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 3, Height: 2, Holes: []Coordinate{{0, 0}, {1, 2}}})
	require.NoError(t, err)
	assert.Equal(t, 4, b.OpenCells)
	assert.Equal(t, Blocked, b.Get(Coordinate{0, 0}))
	assert.Equal(t, Empty, b.Get(Coordinate{0, 1}))
}

func TestPlaceRemoveRoundTrip(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 3, Height: 3})
	require.NoError(t, err)
	tromino := mustPiece(t, "F", []Coordinate{{0, 0}, {1, 0}, {1, 1}})
	p := NewPlacement(tromino, 0, Coordinate{0, 1})
	require.True(t, b.CanPlace(p))

	before := b.String()
	openBefore := b.OpenCells
	require.NoError(t, b.Place(p))
	assert.Equal(t, openBefore-3, b.OpenCells)
	require.NoError(t, b.Remove(p))
	assert.Equal(t, before, b.String())
	assert.Equal(t, openBefore, b.OpenCells)
}

func TestCanPlaceRejectsOutOfBoundsAndOverlap(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 2, Height: 2, Holes: []Coordinate{{1, 1}}})
	require.NoError(t, err)
	square := mustPiece(t, "K", []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}})

	// Covers the hole.
	assert.False(t, b.CanPlace(NewPlacement(square, 0, Coordinate{0, 0})))
	// Walks off the board.
	assert.False(t, b.CanPlace(NewPlacement(square, 0, Coordinate{1, 1})))

	domino := mustPiece(t, "V", []Coordinate{{0, 0}, {1, 0}})
	p := NewPlacement(domino, 0, Coordinate{0, 0})
	require.True(t, b.CanPlace(p))
	require.NoError(t, b.Place(p))
	assert.False(t, b.CanPlace(NewPlacement(domino, 0, Coordinate{0, 0})))
}

func TestPlaceWithoutCanPlaceFailsFast(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 2, Height: 2})
	require.NoError(t, err)
	domino := mustPiece(t, "V", []Coordinate{{0, 0}, {1, 0}})
	p := NewPlacement(domino, 0, Coordinate{0, 0})
	require.NoError(t, b.Place(p))

	assert.ErrorIs(t, b.Place(p), ErrInvariantViolation)

	other := NewPlacement(domino, 0, Coordinate{0, 1})
	require.NoError(t, b.Place(other))
	// Removing a placement that is not on the board is the same defect.
	bad := NewPlacement(domino, 0, Coordinate{5, 5})
	assert.ErrorIs(t, b.Remove(bad), ErrInvariantViolation)
}

func TestBoardStringUsesPieceNames(t *testing.T) {
	defs := []PieceDef{{Name: "K", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}}
	pieces, err := CompilePieces(defs, false)
	require.NoError(t, err)
	b, err := NewBoard(BoardDef{Width: 2, Height: 2})
	require.NoError(t, err)
	NewSolver(b, NewInventory(pieces, defs))

	require.NoError(t, b.Place(NewPlacement(pieces[0], 0, Coordinate{0, 0})))
	// Board and Solution grids render the same letters.
	assert.Equal(t, "KK\nKK\n", b.String())
}

func TestBoardStringFallsBackToIDs(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 2, Height: 2})
	require.NoError(t, err)
	square := mustPiece(t, "K", []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, b.Place(NewPlacement(square, 0, Coordinate{0, 0})))
	assert.Equal(t, "11\n11\n", b.String())
}

func TestEmptyNeighborCount(t *testing.T) {
	b, err := BoardFromString(`
		x.
		..`)
	require.NoError(t, err)
	assert.Equal(t, 1, b.EmptyNeighborCount(Coordinate{0, 1}))
	assert.Equal(t, 1, b.EmptyNeighborCount(Coordinate{1, 0}))
	assert.Equal(t, 2, b.EmptyNeighborCount(Coordinate{1, 1}))
}

func TestMostConstrainedEmptyCell(t *testing.T) {
	b, err := BoardFromString(`
		x.
		..`)
	require.NoError(t, err)
	// (0,1) and (1,0) tie on one empty neighbor; row-major order wins.
	cell, ok := b.MostConstrainedEmptyCell()
	require.True(t, ok)
	assert.Equal(t, Coordinate{0, 1}, cell)
}

func TestMostConstrainedEmptyCellPrefersIsolated(t *testing.T) {
	b, err := BoardFromString(`
		.x.
		xx.
		...`)
	require.NoError(t, err)
	// (0,0) has zero empty neighbors: a dead cell the search must face first.
	cell, ok := b.MostConstrainedEmptyCell()
	require.True(t, ok)
	assert.Equal(t, Coordinate{0, 0}, cell)
	assert.Equal(t, 0, b.EmptyNeighborCount(cell))
}

func TestMostConstrainedEmptyCellNoneWhenCovered(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 2, Height: 2})
	require.NoError(t, err)
	square := mustPiece(t, "K", []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, b.Place(NewPlacement(square, 0, Coordinate{0, 0})))

	_, ok := b.MostConstrainedEmptyCell()
	assert.False(t, ok)
	assert.Equal(t, 0, b.OpenCells)
}
