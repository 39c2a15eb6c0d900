package layout

import "strings"

// Part is one entry of a vertical stack: either a rendered block or a gap of blank rows.
type Part struct {
	block string
	gap   int
	isGap bool
}

func Block(s string) Part { return Part{block: s} }

// Gap inserts n blank rows. Adjacent gaps add up.
func Gap(n int) Part { return Part{gap: max(n, 0), isGap: true} }

// Stack joins parts top to bottom. Gaps are plain blank rows, so a leading or
// trailing gap pads the stack without any placeholder block.
func Stack(parts ...Part) string {
	var lines []string
	pending := 0
	for _, p := range parts {
		if p.isGap {
			pending += p.gap
			continue
		}
		for ; pending > 0; pending-- {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(p.block, "\n")...)
	}
	for ; pending > 0; pending-- {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// StackHeight is the number of rows Stack would produce for parts.
func StackHeight(parts ...Part) int {
	h := 0
	for _, p := range parts {
		if p.isGap {
			h += p.gap
			continue
		}
		h += strings.Count(p.block, "\n") + 1
	}
	return h
}
