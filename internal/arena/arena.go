package arena

import (
	"errors"
	"fmt"

	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
)

var ErrInvalidChoice = errors.New("invalid choice")

// Opponent picks the reply of the side playing against the computer among
// the retained children of id.
type Opponent interface {
	ChooseMove(tree *engine.Tree, id engine.NodeID) (engine.NodeID, error)
}

// ComputerMove returns the first retained child holding the computer's win
// value, else the first child carrying the backed-up value of id, else the
// first child. It returns NoNode when id has no retained children.
func ComputerMove(tree *engine.Tree, id engine.NodeID, cpu common.Color) engine.NodeID {
	var target = common.WinValue(cpu)
	var backedUp = engine.NoNode
	for child := tree.FirstChild(id); child != engine.NoNode; child = tree.NextSibling(child) {
		if tree.Value(child) == target {
			return child
		}
		if backedUp == engine.NoNode && tree.Value(child) == tree.Value(id) {
			backedUp = child
		}
	}
	if backedUp != engine.NoNode {
		return backedUp
	}
	return tree.FirstChild(id)
}

// BestReply plays the opponent's own backed-up choice.
type BestReply struct {
	Side common.Color
}

func (r BestReply) ChooseMove(tree *engine.Tree, id engine.NodeID) (engine.NodeID, error) {
	var child = ComputerMove(tree, id, r.Side)
	if child == engine.NoNode {
		return engine.NoNode, fmt.Errorf("%w: no replies", ErrInvalidChoice)
	}
	return child, nil
}

// ScriptedReply replays 1-based child indices in order.
type ScriptedReply struct {
	Choices []int
	next    int
}

func (r *ScriptedReply) ChooseMove(tree *engine.Tree, id engine.NodeID) (engine.NodeID, error) {
	if r.next >= len(r.Choices) {
		return engine.NoNode, fmt.Errorf("%w: script exhausted", ErrInvalidChoice)
	}
	var choice = r.Choices[r.next]
	r.next++
	return ChildAt(tree, id, choice)
}

// ChildAt returns the child with the 1-based index choice.
func ChildAt(tree *engine.Tree, id engine.NodeID, choice int) (engine.NodeID, error) {
	var index = 1
	for child := tree.FirstChild(id); child != engine.NoNode; child = tree.NextSibling(child) {
		if index == choice {
			return child, nil
		}
		index++
	}
	return engine.NoNode, fmt.Errorf("%w: %v not in 1..%v", ErrInvalidChoice, choice, index-1)
}
