package console

import (
	"fmt"
	"strings"

	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/logrusorgru/aurora"
)

func (p *Protocol) printBoard(b *common.Board) {
	fmt.Fprint(p.out, FormatBoard(p.au, b))
}

// FormatBoard draws the board inside a frame, one row per line.
func FormatBoard(au aurora.Aurora, b *common.Board) string {
	var sb = &strings.Builder{}
	sb.WriteString("---\n")
	for r := 0; r < 3; r++ {
		sb.WriteString("|")
		for f := 0; f < 3; f++ {
			sb.WriteString(cellString(au, b[r*3+f]))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("---\n")
	return sb.String()
}

func cellString(au aurora.Aurora, c common.Color) string {
	switch c {
	case common.White:
		return au.Bold(au.Cyan("w")).String()
	case common.Black:
		return au.Bold(au.Red("b")).String()
	}
	return " "
}
