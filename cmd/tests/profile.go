package main

import (
	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/pkg/profile"
)

//go tool pprof cpu.pprof
func runProfile(path string, depth int) error {
	logger.Println("runProfile started",
		"path", path,
		"depth", depth)
	defer logger.Println("runProfile finished")

	defer profile.Start(profile.CPUProfile, profile.ProfilePath(path), profile.Quiet).Stop()

	var si = newEngine(depth).Search(common.NewPosition(common.White))
	logger.Println("value", si.Value, "nodes", si.Nodes, "time", si.Time)
	return nil
}
