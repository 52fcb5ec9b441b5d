package board

// Board is an immutable pair of bitboards. All mutating operations
// return a new value; Board itself carries no state beyond the two
// bitboards.
type Board struct {
	Black Bitboard
	White Bitboard
}

// StartingBoard returns the standard Othello opening position.
func StartingBoard() Board {
	return Board{
		Black: 0x0000000810000000,
		White: 0x0000001008000000,
	}
}

// PlayerView returns (mine, opp) for color c.
func (b Board) PlayerView(c PlayerColor) (mine, opp Bitboard) {
	if c == Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}

// FindMoves returns the legal-move bitboard for color c.
func (b Board) FindMoves(c PlayerColor) Bitboard {
	mine, opp := b.PlayerView(c)
	return FindMoves(mine, opp)
}

// HasMoves reports whether color c has any legal move.
func (b Board) HasMoves(c PlayerColor) bool {
	return b.FindMoves(c) != 0
}

// FindStability returns the stable-stone bitboard for color c.
func (b Board) FindStability(c PlayerColor) Bitboard {
	mine, opp := b.PlayerView(c)
	return Stability(mine, opp)
}

// ResolveMove plays l for color c and returns the resulting board.
// l must be a legal move for c.
func (b Board) ResolveMove(c PlayerColor, l Loc) Board {
	mine, opp := b.PlayerView(c)
	newMine, newOpp := ResolveMove(mine, opp, l)
	if c == Black {
		return Board{Black: newMine, White: newOpp}
	}
	return Board{Black: newOpp, White: newMine}
}

// Empties returns the number of unoccupied squares.
func (b Board) Empties() int {
	return 64 - (b.Black | b.White).PopCount()
}

// IsTerminal reports whether neither side has a legal move.
func (b Board) IsTerminal() bool {
	return !b.HasMoves(Black) && !b.HasMoves(White)
}

// WinningPlayer compares final disc counts. Only meaningful once the
// game has reached a terminal position, but is well-defined for any
// board.
func (b Board) WinningPlayer() GameOutcome {
	bc, wc := b.Black.PopCount(), b.White.PopCount()
	switch {
	case bc > wc:
		return BlackWins
	case wc > bc:
		return WhiteWins
	default:
		return Draw
	}
}

// String renders the board with Black as 'X', White as 'O'.
func (b Board) String() string {
	s := ""
	for y := 7; y >= 0; y-- {
		s += string(rune('1'+y)) + " "
		for x := 0; x < 8; x++ {
			l := Loc{X: x, Y: y}
			switch {
			case b.Black.IsSet(l):
				s += "X "
			case b.White.IsSet(l):
				s += "O "
			default:
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}
