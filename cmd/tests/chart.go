package main

import (
	"os"

	"github.com/gm-lloyd/AIHW3/internal/report"
	"github.com/gm-lloyd/AIHW3/pkg/common"
)

func runChart(path string, depth int) error {
	logger.Println("chart started",
		"path", path,
		"depth", depth)
	defer logger.Println("chart finished")

	var eng = newEngine(depth)
	var series []report.Series
	for _, first := range []common.Color{common.White, common.Black} {
		var si = eng.Search(common.NewPosition(first))
		series = append(series, report.Series{
			Name:   first.String() + " first",
			Counts: si.Tree.NodesPerPly(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.RenderNodesPerPly(f, "Retained nodes per ply", series...)
}
