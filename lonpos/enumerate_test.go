package lonpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func covers(p Placement, target Coordinate) bool {
	for _, c := range p.Cells {
		if c == target {
			return true
		}
	}
	return false
}

func TestPlacementsAtSquareCorner(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 2, Height: 2})
	require.NoError(t, err)
	defs := []PieceDef{{Name: "K", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}}
	pieces, err := CompilePieces(defs, false)
	require.NoError(t, err)
	inv := NewInventory(pieces, defs)

	// Only one way to put a 2x2 square onto a 2x2 board.
	placements := b.PlacementsAt(Coordinate{0, 0}, inv)
	require.Len(t, placements, 1)
	assert.Len(t, placements[0].Cells, 4)
}

func TestPlacementsAtAllValidAndCoverTarget(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 4, Height: 4, Holes: []Coordinate{{0, 0}}})
	require.NoError(t, err)
	defs := []PieceDef{
		{Name: "F", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}}},
		{Name: "J", Cells: []Coordinate{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	}
	pieces, err := CompilePieces(defs, false)
	require.NoError(t, err)
	inv := NewInventory(pieces, defs)

	target := Coordinate{1, 1}
	placements := b.PlacementsAt(target, inv)
	require.NotEmpty(t, placements)
	seen := make(map[string]bool)
	for _, p := range placements {
		assert.True(t, b.CanPlace(p), "invalid placement %v", p)
		assert.True(t, covers(p, target), "placement %v misses target", p)
		key := p.Piece.Name + Orientation(p.Cells).Key()
		assert.False(t, seen[key], "duplicate placement %v", p)
		seen[key] = true
	}
}

func TestPlacementsSkipUsedPieces(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 4, Height: 4})
	require.NoError(t, err)
	defs := []PieceDef{{Name: "F", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}}}}
	pieces, err := CompilePieces(defs, false)
	require.NoError(t, err)
	inv := NewInventory(pieces, defs)

	inv.Use(0)
	assert.Empty(t, b.PlacementsAt(Coordinate{0, 0}, inv))
	inv.Restore(0)
	assert.NotEmpty(t, b.PlacementsAt(Coordinate{0, 0}, inv))
}

func TestPlacementsSkipIdenticalTwins(t *testing.T) {
	b, err := NewBoard(BoardDef{Width: 2, Height: 4})
	require.NoError(t, err)
	defs := []PieceDef{
		{Name: "K1", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Name: "K2", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	}
	pieces, err := CompilePieces(defs, false)
	require.NoError(t, err)
	inv := NewInventory(pieces, defs)

	// While K1 is available, K2 placements would just relabel K1's.
	for _, p := range b.PlacementsAt(Coordinate{0, 0}, inv) {
		assert.Equal(t, "K1", p.Piece.Name)
	}

	inv.Use(0)
	placements := b.PlacementsAt(Coordinate{0, 0}, inv)
	require.NotEmpty(t, placements)
	for _, p := range placements {
		assert.Equal(t, "K2", p.Piece.Name)
	}
}

func TestInventoryCounts(t *testing.T) {
	defs := []PieceDef{
		{Name: "F", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}}, Count: 2},
		{Name: "J", Cells: []Coordinate{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	}
	pieces, err := CompilePieces(defs, false)
	require.NoError(t, err)
	inv := NewInventory(pieces, defs)

	assert.Equal(t, 2, inv.Remaining(0))
	assert.Equal(t, 1, inv.Remaining(1))
	assert.Equal(t, 10, inv.TotalCells())
	assert.Equal(t, 3, inv.MinPieceSize())

	inv.Use(0)
	assert.True(t, inv.Available(0))
	inv.Use(0)
	assert.False(t, inv.Available(0))
	inv.Restore(0)
	assert.True(t, inv.Available(0))
}
