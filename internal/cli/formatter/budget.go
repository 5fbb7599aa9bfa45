package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBudget renders how much of the daily limit is used, e.g.
// [████░░░░░░] 1500mg / 4000mg. The bar turns yellow past half and red
// once the limit is spent.
func RenderBudget(usedMg, limitMg float64, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if limitMg > 0 {
		pct = usedMg / limitMg
	}
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct >= 1:
		style = StyleRed
	case pct >= 0.5:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %s / %s", style.Render(bar), FormatMg(usedMg), FormatMg(limitMg))
}
