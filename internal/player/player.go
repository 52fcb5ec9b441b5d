// Package player defines the capability every move-selection strategy
// implements, so the game driver can treat them interchangeably.
package player

import "github.com/hailam/othello/internal/board"

// Player selects a move for color c on board b. oppMove is the
// opponent's previous move (board.PassLoc if the opponent passed, or
// if this is the first move of the game); it lets tree-search players
// adopt the subtree rooted at the observed continuation instead of
// starting over. msLeft is the color's remaining time budget in
// milliseconds, or -1 for no time control. GetMove is only ever
// called when b.HasMoves(c) is true.
type Player interface {
	Name() string
	GetMove(b board.Board, c board.PlayerColor, oppMove board.Loc, msLeft int) board.Loc
}
