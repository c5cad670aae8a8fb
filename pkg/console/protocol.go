package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gm-lloyd/AIHW3/internal/arena"
	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
	"github.com/logrusorgru/aurora"
)

var ErrInvalidFirstMover = errors.New("invalid input")

type Engine interface {
	Search(p common.Position) engine.SearchInfo
}

// Protocol asks who moves first, solves the game for that side and lets
// the user replay against the retained tree. The computer always moves
// first.
type Protocol struct {
	engine  Engine
	scanner *bufio.Scanner
	out     io.Writer
	au      aurora.Aurora
}

func New(engine Engine, in io.Reader, out io.Writer, colors bool) *Protocol {
	return &Protocol{
		engine:  engine,
		scanner: bufio.NewScanner(in),
		out:     out,
		au:      aurora.NewAurora(colors),
	}
}

func (p *Protocol) Run() error {
	fmt.Fprintln(p.out, "Ma(x) or Mi(n) first? ")
	var token, err = p.readLine()
	if err != nil {
		return err
	}
	var cpu common.Color
	switch token {
	case "x":
		cpu = common.White
	case "n":
		cpu = common.Black
	default:
		fmt.Fprintln(p.out, "invalid input")
		return fmt.Errorf("%w: %q", ErrInvalidFirstMover, token)
	}
	var si = p.engine.Search(common.NewPosition(cpu))
	fmt.Fprintln(p.out, si.Time)
	return p.Traverse(si.Tree, cpu)
}

// Traverse replays the tree. The computer plays ComputerMove, the user picks
// one of the replies the search kept; pruned replies are not offered.
func (p *Protocol) Traverse(tree *engine.Tree, cpu common.Color) error {
	var id = tree.Root()
	fmt.Fprintln(p.out, " final value is", tree.Value(id))
	if tree.Node(id).Turn == cpu && tree.FirstChild(id) != engine.NoNode {
		id = arena.ComputerMove(tree, id, cpu)
	}

	for !tree.Node(id).IsWin() {
		fmt.Fprintln(p.out, "CPU's Move:")
		p.printBoard(&tree.Node(id).Board)
		if tree.FirstChild(id) == engine.NoNode {
			fmt.Fprintln(p.out, "search horizon reached")
			return nil
		}

		fmt.Fprintln(p.out, "Which Move do you pick?")
		var moveNum = 1
		for child := tree.FirstChild(id); child != engine.NoNode; child = tree.NextSibling(child) {
			fmt.Fprintln(p.out, moveNum, common.MoveName(&tree.Node(id).Board, &tree.Node(child).Board))
			p.printBoard(&tree.Node(child).Board)
			moveNum++
		}
		var choice, err = p.readChoice()
		if err != nil {
			return err
		}
		id, err = arena.ChildAt(tree, id, choice)
		if err != nil {
			return err
		}
		if tree.Node(id).IsWin() {
			break
		}
		if tree.FirstChild(id) == engine.NoNode {
			p.printBoard(&tree.Node(id).Board)
			fmt.Fprintln(p.out, "search horizon reached")
			return nil
		}
		id = arena.ComputerMove(tree, id, cpu)
	}

	var board = tree.Node(id).Board
	if board.Winner() == cpu {
		fmt.Fprintln(p.out, "CPU's Move:")
		p.printBoard(&board)
		fmt.Fprintln(p.out, "CPU wins")
	} else {
		fmt.Fprintln(p.out, "Your Move:")
		p.printBoard(&board)
		fmt.Fprintln(p.out, "You win")
	}
	return nil
}

func (p *Protocol) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *Protocol) readChoice() (int, error) {
	var line, err = p.readLine()
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", arena.ErrInvalidChoice, err)
	}
	return choice, nil
}
