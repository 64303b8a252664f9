// Package ui renders the console surface of the search: banner,
// progress line, and the final result panel.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/solvanity/internal/worker"
	"github.com/solvanity/pkg/vanity"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// PrintBanner shows the program header.
func PrintBanner(version string) {
	fmt.Println()
	fmt.Printf("%s%s", ColorCyan, ColorBold)
	fmt.Println("  ╔═══════════════════════════════════════════════╗")
	fmt.Printf("  ║  solvanity %s• seeded vanity address search%s    ║\n", ColorDim, ColorCyan+ColorBold)
	fmt.Printf("  ║  %sv%-6s%s                                      ║\n", ColorYellow, version, ColorCyan+ColorBold)
	fmt.Println("  ╚═══════════════════════════════════════════════╝")
	fmt.Print(ColorReset)
	fmt.Println()
}

// PrintSearchInfo displays the pattern being searched for and its
// estimated difficulty.
func PrintSearchInfo(prefix, suffix string, workers int, difficulty uint64) {
	fmt.Printf("\n    %s🚀 SEARCHING%s", ColorGreen+ColorBold, ColorReset)

	if prefix != "" {
		fmt.Printf(" %s%s%s%s...%s", ColorBold, ColorCyan, prefix, ColorDim, ColorReset)
	}
	if suffix != "" {
		fmt.Printf("%s...%s%s%s%s", ColorDim, ColorCyan, ColorBold, suffix, ColorReset)
	}

	fmt.Printf(" %s(1/%s, %d workers)%s\n\n", ColorDim, FormatNumber(difficulty), workers, ColorReset)
}

// PrintProgress shows an animated progress line.
func PrintProgress(stats worker.Stats, difficulty uint64, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	attempts := float64(stats.Attempts)
	diff := float64(difficulty)
	if diff == 0 {
		diff = 1
	}

	// Probability-of-found curve rather than a linear fill; the search
	// has no fixed endpoint.
	ratio := attempts / diff
	progress := 1.0 - math.Pow(0.5, 2.0*ratio)

	barWidth := 40
	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Printf("\r    %s%s%s %s%s%s %s%s%s │ %s%s%s │ %s",
		ColorCyan, spinner, ColorReset,
		ColorDim, bar, ColorReset,
		ColorGreen+ColorBold, FormatHashRate(stats.HashRate), ColorReset,
		ColorYellow, FormatNumber(stats.Attempts), ColorReset,
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// PrintSuccess shows the found address and the seed that produces it.
func PrintSuccess(result *vanity.Result, elapsed time.Duration, attempts uint64, outputFile string) {
	fmt.Printf("\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s║               ✨ ADDRESS FOUND! ✨                       ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorGreen, ColorBold, ColorReset)

	fmt.Printf("    %s◎ DERIVED ADDRESS%s\n", ColorCyan+ColorBold, ColorReset)
	fmt.Println()
	fmt.Printf("       %s%s%s%s\n", ColorGreen, ColorBold, result.Address, ColorReset)
	fmt.Println()

	fmt.Printf("    %s🌱 SEED%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Printf("       %s%s%s\n\n", ColorYellow, result.Seed, ColorReset)

	fmt.Printf("    %s⏱   %s%s   %s│   %s📊  %s%s   %s│   %s💾  %s%s%s\n\n",
		ColorCyan, ColorReset+ColorBold, FormatDuration(elapsed),
		ColorDim,
		ColorPurple, ColorReset+ColorBold, FormatNumber(attempts),
		ColorDim,
		ColorYellow, ColorReset+ColorBold, outputFile,
		ColorReset)
	fmt.Printf("    %sRecreate the address from this seed, your base key, and the owner program.%s\n", ColorDim, ColorReset)
}

// ClearLine clears the current line
func ClearLine() {
	fmt.Print("\r                                                                                              \r")
}

// FormatHashRate formats a keys-per-second rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
