package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gm-lloyd/AIHW3/internal/arena"
	"github.com/gm-lloyd/AIHW3/pkg/common"
	"github.com/gm-lloyd/AIHW3/pkg/engine"
	"github.com/logrusorgru/aurora"
)

type countingEngine struct {
	engine   *engine.Engine
	searches int
}

func (e *countingEngine) Search(p common.Position) engine.SearchInfo {
	e.searches++
	return e.engine.Search(p)
}

func newCountingEngine(depth int) *countingEngine {
	var options = engine.NewOptions()
	options.MaxDepth = depth
	return &countingEngine{engine: engine.NewEngine(options)}
}

func TestInvalidFirstMover(t *testing.T) {
	for _, input := range []string{"q\n", "X\n", "max\n", "\n"} {
		var eng = newCountingEngine(2)
		var out bytes.Buffer
		var err = New(eng, strings.NewReader(input), &out, false).Run()
		if !errors.Is(err, ErrInvalidFirstMover) {
			t.Error(input, err)
		}
		if eng.searches != 0 {
			t.Error(input, "search performed")
		}
		if !strings.Contains(out.String(), "invalid input") {
			t.Error(input, out.String())
		}
	}
}

func TestReplay(t *testing.T) {
	var tests = []struct {
		input string
		err   error
	}{
		{"x\n1\n", nil},
		{"n\n 2 \n", nil},
		{"x\nabc\n", arena.ErrInvalidChoice},
		{"n\n0\n", arena.ErrInvalidChoice},
		{"x\n42\n", arena.ErrInvalidChoice},
		{"x\n", io.ErrUnexpectedEOF},
		{"", io.ErrUnexpectedEOF},
	}
	for i, test := range tests {
		var eng = newCountingEngine(2)
		var out bytes.Buffer
		var err = New(eng, strings.NewReader(test.input), &out, false).Run()
		if test.err == nil {
			if err != nil {
				t.Error(i, err)
				continue
			}
			var s = out.String()
			for _, expected := range []string{
				"Ma(x) or Mi(n) first?",
				"final value is",
				"CPU's Move:",
				"Which Move do you pick?",
				"search horizon reached",
			} {
				if !strings.Contains(s, expected) {
					t.Error(i, expected, s)
				}
			}
		} else if !errors.Is(err, test.err) {
			t.Error(i, test.input, err)
		}
	}
}

func TestTraverseWin(t *testing.T) {
	var p, err = common.NewPositionFromBoard("ww./bb./...", common.White)
	if err != nil {
		t.Fatal(err)
	}
	var options = engine.NewOptions()
	options.MaxDepth = 4
	var si = engine.NewEngine(options).Search(p)
	var out bytes.Buffer
	err = New(nil, strings.NewReader(""), &out, false).Traverse(si.Tree, common.White)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "CPU's Move:\n---\n|www|\n|bb |\n|   |\n---\nCPU wins\n") {
		t.Error(out.String())
	}
}

func TestFormatBoard(t *testing.T) {
	var b, _ = common.ParseBoard("w../.b./..b")
	var s = FormatBoard(aurora.NewAurora(false), &b)
	if s != "---\n|w  |\n| b |\n|  b|\n---\n" {
		t.Error(s)
	}
}
