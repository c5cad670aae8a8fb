package engine

import (
	"math"

	"github.com/gm-lloyd/AIHW3/pkg/common"
)

const (
	DefaultMaxDepth = 16
	maxHeight       = 64
	// Running values start at the int limits. Real values stay within
	// [-8, 8], so a limit survives only at a node without legal moves.
	valueInfinity      = math.MaxInt
	valueMinusInfinity = math.MinInt
)

// initialValue is the running value of a node before its first child is
// backed up.
func initialValue(turn common.Color) int {
	if turn == common.White {
		return valueMinusInfinity
	}
	return valueInfinity
}

func clampDepth(depth int) int {
	return common.Max(0, common.Min(depth, maxHeight))
}
