package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessmoves/position"
)

var (
	colorLight     = color.New(color.FgBlack, color.BgHiWhite)
	colorDark      = color.New(color.FgBlack, color.BgGreen)
	colorHighlight = color.New(color.FgBlack, color.BgHiYellow)
	colorLabel     = color.New(color.Bold)
)

// Draw renders the board for a terminal, marking the highlighted squares.
// Colors are dropped when color.NoColor is set.
func (b *Board) Draw(highlight ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	builder := strings.Builder{}
	for y := Height; y >= 1; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y))
		for x := int8(1); x <= Width; x++ {
			pos := position.New(y, x)
			sym := " "
			if p, ok := b.PieceAt(pos); ok {
				sym = p.Type.SymbolUnicode(p.Side, false)
			} else if marked[pos] {
				sym = "·"
			}
			c := colorDark
			switch {
			case marked[pos]:
				c = colorHighlight
			case (x+y)%2 == 1:
				c = colorLight
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := int8(1); x <= Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprint(fmt.Sprintf(" %s ", position.NotationComponentX(x))))
	}
	return builder.String()
}
