package main

import (
	"log"
	"os"

	"github.com/gm-lloyd/AIHW3/pkg/engine"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = run()
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var cliArgs = NewCommandArgs(os.Args)
	var ch = NewCommandHandler()
	ch.Add("benchmark", func() error {
		var depth = cliArgs.GetInt("depth", engine.DefaultMaxDepth)
		return runBenchmark(depth)
	})
	ch.Add("verify", func() error {
		var depth = cliArgs.GetInt("depth", 6)
		var strategy = cliArgs.GetInt("strategy", 0) != 0
		return runVerify(depth, strategy)
	})
	ch.Add("profile", func() error {
		var depth = cliArgs.GetInt("depth", engine.DefaultMaxDepth)
		var path = mapPath(cliArgs.GetString("out", "."))
		return runProfile(path, depth)
	})
	ch.Add("chart", func() error {
		var depth = cliArgs.GetInt("depth", engine.DefaultMaxDepth)
		var path = mapPath(cliArgs.GetString("out", "nodes.html"))
		return runChart(path, depth)
	})
	return ch.Execute(cliArgs.CommandName())
}

func newEngine(depth int) *engine.Engine {
	var options = engine.NewOptions()
	options.MaxDepth = depth
	return engine.NewEngine(options)
}
