package engine

import (
	. "github.com/gm-lloyd/AIHW3/pkg/common"
)

// alphaBeta adds the node for board to the tree and searches it. A won board
// or a board at the depth limit keeps its evaluation. Otherwise successors
// are searched in generation order and appended as children until
// alpha >= beta; the rest are never visited.
func (e *Engine) alphaBeta(board Board, turn Color, depth, alpha, beta int) NodeID {
	var id = e.tree.newNode(board, turn, depth)
	var win, value = board.Evaluate()
	e.tree.nodes[id].Value = value
	if win || depth >= len(e.stack)-1 {
		return id
	}

	var ml = board.GenerateSuccessors(e.stack[depth][:], turn)
	var best = initialValue(turn)

	if turn == White {
		for i := range ml {
			var child = e.alphaBeta(ml[i], Black, depth+1, alpha, beta)
			e.tree.appendChild(id, child)
			best = Max(best, e.tree.nodes[child].Value)
			alpha = Max(alpha, best)
			if alpha >= beta {
				e.cutoffs++
				break
			}
		}
	} else {
		for i := range ml {
			var child = e.alphaBeta(ml[i], White, depth+1, alpha, beta)
			e.tree.appendChild(id, child)
			best = Min(best, e.tree.nodes[child].Value)
			beta = Min(beta, best)
			if alpha >= beta {
				e.cutoffs++
				break
			}
		}
	}

	e.tree.nodes[id].Value = best
	return id
}
