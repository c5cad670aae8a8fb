package main

import (
	"fmt"

	"github.com/gm-lloyd/AIHW3/pkg/common"
)

func runBenchmark(depth int) error {
	logger.Println("benchmark started",
		"depth", depth)
	defer logger.Println("benchmark finished")

	var eng = newEngine(depth)
	for _, first := range []common.Color{common.White, common.Black} {
		var si = eng.Search(common.NewPosition(first))
		fmt.Println("First", first)
		fmt.Println("Value", si.Value)
		fmt.Println("Time", si.Time)
		fmt.Println("Nodes", si.Nodes)
		fmt.Println("Cutoffs", si.Cutoffs)
		fmt.Println("kNPS", int64(si.Nodes)/(si.Time.Milliseconds()+1))
	}
	return nil
}
