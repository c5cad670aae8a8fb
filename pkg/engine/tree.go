package engine

import (
	"github.com/gm-lloyd/AIHW3/pkg/common"
)

type NodeID int32

const NoNode NodeID = -1

// Node is one board reached during the search. Children are chained through
// firstChild/nextSibling in the order they were searched; parent is an index
// into the same tree and never owns the node.
type Node struct {
	Board common.Board
	Turn  common.Color
	Depth int8
	Value int

	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	nextSibling NodeID
}

func (n *Node) IsWin() bool {
	return n.Board.CheckWin()
}

// Tree owns every node of one search. It is read-only once Search returns,
// so it may be shared between goroutines.
type Tree struct {
	nodes []Node
}

func newTree(capacity int) *Tree {
	return &Tree{nodes: make([]Node, 0, capacity)}
}

func (t *Tree) newNode(board common.Board, turn common.Color, depth int) NodeID {
	var id = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Board:       board,
		Turn:        turn,
		Depth:       int8(depth),
		parent:      NoNode,
		firstChild:  NoNode,
		lastChild:   NoNode,
		nextSibling: NoNode,
	})
	return id
}

func (t *Tree) appendChild(parent, child NodeID) {
	var p = &t.nodes[parent]
	if p.lastChild == NoNode {
		p.firstChild = child
	} else {
		t.nodes[p.lastChild].nextSibling = child
	}
	p.lastChild = child
	t.nodes[child].parent = parent
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

func (t *Tree) Value(id NodeID) int {
	return t.nodes[id].Value
}

func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

func (t *Tree) FirstChild(id NodeID) NodeID {
	return t.nodes[id].firstChild
}

func (t *Tree) NextSibling(id NodeID) NodeID {
	return t.nodes[id].nextSibling
}

func (t *Tree) Children(id NodeID) []NodeID {
	var result []NodeID
	for child := t.nodes[id].firstChild; child != NoNode; child = t.nodes[child].nextSibling {
		result = append(result, child)
	}
	return result
}

func (t *Tree) ChildCount(id NodeID) int {
	var result = 0
	for child := t.nodes[id].firstChild; child != NoNode; child = t.nodes[child].nextSibling {
		result++
	}
	return result
}

// Line returns the nodes from the root down to id.
func (t *Tree) Line(id NodeID) []NodeID {
	var result []NodeID
	for ; id != NoNode; id = t.nodes[id].parent {
		result = append(result, id)
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

func (t *Tree) NodesPerPly() []int {
	var result []int
	for i := range t.nodes {
		var depth = int(t.nodes[i].Depth)
		for len(result) <= depth {
			result = append(result, 0)
		}
		result[depth]++
	}
	return result
}
