package arena

import (
	"fmt"
	"log"

	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
)

const (
	commentWin     = "three in a row"
	commentHorizon = "search horizon"
)

type GameResult struct {
	Line    []engine.NodeID
	Winner  common.Color
	Comment string
}

func (r *GameResult) Plies() int {
	return len(r.Line) - 1
}

// PlayGame walks the tree from the root. The computer answers with
// ComputerMove, the opponent with its own choice, until a line is completed
// or the game leaves the retained tree.
func PlayGame(tree *engine.Tree, cpu common.Color, opponent Opponent) (GameResult, error) {
	var id = tree.Root()
	var line = []engine.NodeID{id}
	for {
		var node = tree.Node(id)
		if winner := node.Board.Winner(); winner != common.Empty {
			return GameResult{Line: line, Winner: winner, Comment: commentWin}, nil
		}
		if tree.FirstChild(id) == engine.NoNode {
			return GameResult{Line: line, Comment: commentHorizon}, nil
		}
		var next engine.NodeID
		if node.Turn == cpu {
			next = ComputerMove(tree, id, cpu)
		} else {
			var err error
			next, err = opponent.ChooseMove(tree, id)
			if err != nil {
				return GameResult{Line: line}, err
			}
			if next == engine.NoNode || tree.Parent(next) != id {
				return GameResult{Line: line}, fmt.Errorf("%w: node %v is not a reply", ErrInvalidChoice, next)
			}
		}
		id = next
		line = append(line, id)
	}
}

func LogGame(logger *log.Logger, tree *engine.Tree, result GameResult) {
	for i := 1; i < len(result.Line); i++ {
		var before = tree.Node(result.Line[i-1])
		var after = tree.Node(result.Line[i])
		logger.Println("ply", i,
			"side", before.Turn,
			"move", common.MoveName(&before.Board, &after.Board),
			"value", after.Value)
	}
	logger.Println("result", result.Winner, result.Comment, "plies", result.Plies())
}
