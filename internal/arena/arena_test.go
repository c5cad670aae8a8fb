package arena

import (
	"context"
	"errors"
	"testing"

	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
)

func search(t *testing.T, board string, turn common.Color, depth int) engine.SearchInfo {
	var p, err = common.NewPositionFromBoard(board, turn)
	if err != nil {
		t.Fatal(err)
	}
	var options = engine.NewOptions()
	options.MaxDepth = depth
	return engine.NewEngine(options).Search(p)
}

func TestComputerMoveTakesWin(t *testing.T) {
	var si = search(t, "ww./bb./...", common.White, 6)
	var child = ComputerMove(si.Tree, si.Root, common.White)
	if child == engine.NoNode {
		t.Fatal("no move")
	}
	var board = si.Tree.Node(child).Board
	if board.String() != "www/bb./..." {
		t.Error(board)
	}
	var result, err = PlayGame(si.Tree, common.White, BestReply{Side: common.Black})
	if err != nil {
		t.Fatal(err)
	}
	if result.Winner != common.White || result.Plies() != 1 || result.Comment != commentWin {
		t.Error(result)
	}
}

func TestPlayGameHorizon(t *testing.T) {
	var si = search(t, common.InitialPosition, common.White, 2)
	var result, err = PlayGame(si.Tree, common.White, BestReply{Side: common.Black})
	if err != nil {
		t.Fatal(err)
	}
	if result.Winner != common.Empty || result.Plies() != 2 || result.Comment != commentHorizon {
		t.Error(result)
	}
}

func TestScriptedReply(t *testing.T) {
	var si = search(t, common.InitialPosition, common.Black, 3)
	var tests = []struct {
		choices []int
		ok      bool
	}{
		{[]int{1}, true},
		{[]int{8}, true},
		{[]int{0}, false},
		{[]int{9}, false},
		{nil, false},
	}
	for i, test := range tests {
		var opponent = &ScriptedReply{Choices: test.choices}
		var result, err = PlayGame(si.Tree, common.Black, opponent)
		if test.ok {
			if err != nil || result.Plies() != 3 {
				t.Error(i, test, err, result)
			}
		} else if !errors.Is(err, ErrInvalidChoice) {
			t.Error(i, test, err)
		}
	}
}

type fixedReply engine.NodeID

func (r fixedReply) ChooseMove(tree *engine.Tree, id engine.NodeID) (engine.NodeID, error) {
	return engine.NodeID(r), nil
}

func TestPlayGameRejectsForeignNode(t *testing.T) {
	var si = search(t, common.InitialPosition, common.Black, 3)
	for i, opponent := range []fixedReply{fixedReply(engine.NoNode), fixedReply(si.Root)} {
		var result, err = PlayGame(si.Tree, common.Black, opponent)
		if !errors.Is(err, ErrInvalidChoice) || result.Plies() != 1 {
			t.Error(i, err, result)
		}
	}
}

func TestChildAt(t *testing.T) {
	var si = search(t, common.InitialPosition, common.White, 1)
	var children = si.Tree.Children(si.Root)
	if len(children) != 9 {
		t.Fatal(len(children))
	}
	for i, expected := range children {
		var child, err = ChildAt(si.Tree, si.Root, i+1)
		if err != nil || child != expected {
			t.Error(i, child, err)
		}
	}
}

func TestVerifyStrategy(t *testing.T) {
	var si = search(t, "ww./bb./...", common.White, 6)
	var report, err = VerifyStrategy(context.Background(), si.Tree, common.White)
	if err != nil {
		t.Fatal(err)
	}
	if report.Lines != 1 || report.ComputerWins != 1 || report.LongestLine != 1 {
		t.Error(report)
	}

	si = search(t, common.InitialPosition, common.White, 5)
	report, err = VerifyStrategy(context.Background(), si.Tree, common.Black)
	if err != nil {
		t.Fatal(err)
	}
	if report.Lines == 0 ||
		report.Lines != report.ComputerWins+report.OpponentWins+report.Horizons ||
		report.LongestLine > 5 {
		t.Error(report)
	}
}

func TestVerifyStrategyCancel(t *testing.T) {
	var si = search(t, common.InitialPosition, common.White, 5)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var _, err = VerifyStrategy(ctx, si.Tree, common.Black)
	if !errors.Is(err, context.Canceled) {
		t.Error(err)
	}
}

// The first player wins: every retained reply loses to the computer within
// the depth limit.
func TestFullGame(t *testing.T) {
	if testing.Short() {
		t.Skip("full depth search")
	}
	var si = engine.NewEngine(engine.NewOptions()).Search(common.NewPosition(common.White))
	var result, err = PlayGame(si.Tree, common.White, BestReply{Side: common.Black})
	if err != nil {
		t.Fatal(err)
	}
	if result.Winner != common.White || result.Plies() > engine.DefaultMaxDepth {
		t.Error(result)
	}
	report, err := VerifyStrategy(context.Background(), si.Tree, common.White)
	if err != nil {
		t.Fatal(err)
	}
	if report.OpponentWins != 0 || report.Horizons != 0 || report.LongestLine > engine.DefaultMaxDepth {
		t.Error(report)
	}
}
