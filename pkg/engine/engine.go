package engine

import (
	"time"

	"github.com/gm-lloyd/AIHW3/pkg/common"
)

type Engine struct {
	Options Options
	tree    *Tree
	cutoffs int
	stack   [][common.MaxSuccessors]common.Board
}

type SearchInfo struct {
	Tree    *Tree
	Root    NodeID
	Value   int
	Nodes   int
	Cutoffs int
	Time    time.Duration
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
	}
}

func (e *Engine) Prepare() {
	var depth = clampDepth(e.Options.MaxDepth)
	if len(e.stack) != depth+1 {
		e.stack = make([][common.MaxSuccessors]common.Board, depth+1)
	}
}

// Search runs alpha-beta from p with the full window and returns the
// retained tree. The engine keeps no reference to the tree afterwards.
func (e *Engine) Search(p common.Position) SearchInfo {
	var start = time.Now()
	e.Prepare()
	e.tree = newTree(e.Options.Capacity)
	e.cutoffs = 0
	var root = e.alphaBeta(p.Board, p.Turn, 0, valueMinusInfinity, valueInfinity)
	var tree = e.tree
	e.tree = nil
	return SearchInfo{
		Tree:    tree,
		Root:    root,
		Value:   tree.Value(root),
		Nodes:   tree.Len(),
		Cutoffs: e.cutoffs,
		Time:    time.Since(start),
	}
}
