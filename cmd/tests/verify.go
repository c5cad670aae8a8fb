package main

import (
	"context"
	"fmt"

	"github.com/gm-lloyd/AIHW3/internal/arena"
	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
	"golang.org/x/sync/errgroup"
)

// runVerify compares alpha-beta with plain minimax at depth for both first
// movers and optionally checks the full depth strategy against every kept
// reply. Each first mover runs in its own goroutine with its own engine.
func runVerify(depth int, strategy bool) error {
	logger.Println("verify started",
		"depth", depth,
		"strategy", strategy)
	defer logger.Println("verify finished")

	g, ctx := errgroup.WithContext(context.Background())
	for _, first := range []common.Color{common.White, common.Black} {
		var first = first
		g.Go(func() error {
			var p = common.NewPosition(first)
			var si = newEngine(depth).Search(p)
			var expected = engine.Minimax(p, depth)
			if si.Value != expected {
				return fmt.Errorf("first %v depth %v: alpha-beta %v minimax %v",
					first, depth, si.Value, expected)
			}
			logger.Println("first", first, "depth", depth, "value", si.Value, "nodes", si.Nodes)
			if !strategy {
				return nil
			}
			si = newEngine(engine.DefaultMaxDepth).Search(p)
			var report, err = arena.VerifyStrategy(ctx, si.Tree, first)
			if err != nil {
				return err
			}
			logger.Println("first", first, "value", si.Value, report)
			if report.OpponentWins != 0 {
				return fmt.Errorf("first %v: strategy loses %v lines", first, report.OpponentWins)
			}
			return nil
		})
	}
	return g.Wait()
}
