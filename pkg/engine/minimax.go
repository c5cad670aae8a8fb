package engine

import (
	. "github.com/gm-lloyd/AIHW3/pkg/common"
)

// Minimax returns the value of p searched without pruning and without
// keeping a tree. Leaves follow the same rules as Search.
func Minimax(p Position, maxDepth int) int {
	maxDepth = clampDepth(maxDepth)
	var stack = make([][MaxSuccessors]Board, maxDepth+1)
	var search func(board Board, turn Color, depth int) int
	search = func(board Board, turn Color, depth int) int {
		var win, value = board.Evaluate()
		if win || depth >= maxDepth {
			return value
		}
		var best = initialValue(turn)
		for _, child := range board.GenerateSuccessors(stack[depth][:], turn) {
			var score = search(child, turn.Opponent(), depth+1)
			if turn == White {
				best = Max(best, score)
			} else {
				best = Min(best, score)
			}
		}
		return best
	}
	return search(p.Board, p.Turn, 0)
}
