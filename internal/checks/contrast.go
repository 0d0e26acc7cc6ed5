package checks

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseColor converts a CSS color ("#abc", "#aabbcc", "rgb(…)", "rgba(…)")
// into its 0..255 channels
func ParseColor(raw string) (r, g, b int, err error) {
	col := strings.TrimSpace(raw)

	if strings.HasPrefix(col, "rgb") {
		col = strings.TrimPrefix(col, "rgba")
		col = strings.TrimPrefix(col, "rgb")
		col = strings.Trim(col, "()")
		parts := strings.Split(col, ",")
		if len(parts) < 3 {
			return 0, 0, 0, fmt.Errorf("malformed rgb color: %q", raw)
		}
		var out [3]int
		for i := 0; i < 3; i++ {
			n, convErr := strconv.Atoi(strings.TrimSpace(parts[i]))
			if convErr != nil {
				return 0, 0, 0, fmt.Errorf("malformed rgb channel in %q: %w", raw, convErr)
			}
			out[i] = n
		}
		return out[0], out[1], out[2], nil
	}

	col = strings.TrimPrefix(col, "#")
	if len(col) == 3 {
		col = string([]byte{col[0], col[0], col[1], col[1], col[2], col[2]})
	}
	if len(col) != 6 {
		return 0, 0, 0, fmt.Errorf("malformed hex color: %q", raw)
	}
	var out [3]int
	for i := 0; i < 3; i++ {
		n, convErr := strconv.ParseInt(col[i*2:i*2+2], 16, 32)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("malformed hex color %q: %w", raw, convErr)
		}
		out[i] = int(n)
	}
	return out[0], out[1], out[2], nil
}

// relativeLuminance implements the WCAG formula for sRGB channels
func relativeLuminance(r, g, b int) float64 {
	channel := func(c int) float64 {
		v := float64(c) / 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(r) + 0.7152*channel(g) + 0.0722*channel(b)
}

// ContrastRatio returns the WCAG contrast ratio between two CSS colors.
// The second return is false when either color cannot be parsed.
func ContrastRatio(fg, bg string) (float64, bool) {
	r1, g1, b1, err := ParseColor(fg)
	if err != nil {
		return 0, false
	}
	r2, g2, b2, err := ParseColor(bg)
	if err != nil {
		return 0, false
	}
	l1 := relativeLuminance(r1, g1, b1)
	l2 := relativeLuminance(r2, g2, b2)
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), true
}
