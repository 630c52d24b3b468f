package advisor

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatUSD renders an amount as "$43,210.55".
func formatUSD(v float64) string {
	if v < 0 {
		return "-" + formatUSD(-v)
	}
	return printer.Sprintf("$%.2f", v)
}

// formatUSDCompact abbreviates large amounts ("$1.26T", "$540.20M").
func formatUSDCompact(v float64) string {
	switch {
	case v >= 1e12:
		return printer.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return printer.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return printer.Sprintf("$%.2fM", v/1e6)
	default:
		return formatUSD(v)
	}
}

// formatPercent renders a signed percentage ("+2.35%", "-1.20%").
func formatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

func formatScore(score int) string {
	return fmt.Sprintf("%d/10", score)
}

func formatRank(rank int) string {
	if rank <= 0 {
		return "unranked"
	}
	return fmt.Sprintf("rank #%d", rank)
}

func upper[T ~string](v T) string {
	return strings.ToUpper(string(v))
}

func bullets(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, "• "+l)
		}
	}
	return strings.Join(out, "\n")
}

func paragraphs(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
