package arena

import (
	"context"
	"fmt"
	"sync"

	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
	"golang.org/x/sync/errgroup"
)

// StrategyReport counts the outcomes of every retained opponent line played
// against ComputerMove.
type StrategyReport struct {
	Lines        int
	ComputerWins int
	OpponentWins int
	Horizons     int
	LongestLine  int
}

func (r *StrategyReport) add(other StrategyReport) {
	r.Lines += other.Lines
	r.ComputerWins += other.ComputerWins
	r.OpponentWins += other.OpponentWins
	r.Horizons += other.Horizons
	r.LongestLine = common.Max(r.LongestLine, other.LongestLine)
}

func (r StrategyReport) String() string {
	return fmt.Sprintf("lines %v computer %v opponent %v horizon %v longest %v",
		r.Lines, r.ComputerWins, r.OpponentWins, r.Horizons, r.LongestLine)
}

// VerifyStrategy plays ComputerMove for cpu against every retained reply of
// the opponent. The branches below the first opponent choice are walked
// concurrently; the tree is only read.
func VerifyStrategy(ctx context.Context, tree *engine.Tree, cpu common.Color) (StrategyReport, error) {
	var id = tree.Root()
	var plies = 0
	for tree.Node(id).Turn == cpu && !tree.Node(id).IsWin() && tree.FirstChild(id) != engine.NoNode {
		id = ComputerMove(tree, id, cpu)
		plies++
	}

	var children = tree.Children(id)
	if len(children) == 0 || tree.Node(id).IsWin() {
		var report StrategyReport
		var err = walk(ctx, tree, id, cpu, plies, &report)
		return report, err
	}

	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	var total StrategyReport
	for _, child := range children {
		var child = child
		g.Go(func() error {
			var report StrategyReport
			if err := walk(ctx, tree, child, cpu, plies+1, &report); err != nil {
				return err
			}
			mu.Lock()
			total.add(report)
			mu.Unlock()
			return nil
		})
	}
	var err = g.Wait()
	return total, err
}

func walk(ctx context.Context, tree *engine.Tree, id engine.NodeID,
	cpu common.Color, plies int, report *StrategyReport) error {
	var node = tree.Node(id)
	if winner := node.Board.Winner(); winner != common.Empty {
		report.Lines++
		if winner == cpu {
			report.ComputerWins++
		} else {
			report.OpponentWins++
		}
		report.LongestLine = common.Max(report.LongestLine, plies)
		return nil
	}
	if tree.FirstChild(id) == engine.NoNode {
		report.Lines++
		report.Horizons++
		report.LongestLine = common.Max(report.LongestLine, plies)
		return nil
	}
	if node.Turn == cpu {
		return walk(ctx, tree, ComputerMove(tree, id, cpu), cpu, plies+1, report)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for child := tree.FirstChild(id); child != engine.NoNode; child = tree.NextSibling(child) {
		if err := walk(ctx, tree, child, cpu, plies+1, report); err != nil {
			return err
		}
	}
	return nil
}
