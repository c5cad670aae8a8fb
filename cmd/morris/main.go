package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/gm-lloyd/AIHW3/pkg/console"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
	"github.com/pkg/profile"
)

const (
	name = "Morris"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgNoColor  bool
	flgDepth    int
	flgProfile  string
)

func main() {
	flag.BoolVar(&flgNoColor, "nocolor", false, "disables colored boards")
	flag.IntVar(&flgDepth, "depth", engine.DefaultMaxDepth, "search depth in plies")
	flag.StringVar(&flgProfile, "profile", "", "writes a cpu or mem profile")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	if err := run(); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run() error {
	switch flgProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile %q", flgProfile)
	}

	var options = engine.NewOptions()
	options.MaxDepth = flgDepth
	var eng = engine.NewEngine(options)

	var protocol = console.New(eng, os.Stdin, os.Stdout, !flgNoColor)
	return protocol.Run()
}
