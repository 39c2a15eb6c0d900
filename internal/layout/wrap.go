package layout

// Size is the measured size of one chip, in terminal cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Frame is the placed rectangle of one chip.
type Frame struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (f Frame) MaxX() int { return f.X + f.Width }
func (f Frame) MaxY() int { return f.Y + f.Height }

// Contains reports whether the cell (x, y) lies inside f.
func (f Frame) Contains(x, y int) bool {
	return x >= f.X && x < f.MaxX() && y >= f.Y && y < f.MaxY()
}

// Config holds the spacing constants of the wrap layout.
type Config struct {
	// Gap is the horizontal space between neighbours on one row.
	Gap int `json:"gap"`
	// LineSpacing is the vertical space between rows.
	LineSpacing int `json:"lineSpacing"`
}

func DefaultConfig() Config {
	return Config{Gap: 8, LineSpacing: 8}
}

// Wrap places sizes left to right, wrapping greedily into rows that always start
// flush left at x = 0.
//
// A chip moves to a new row when prev.X+prev.Width+Gap+cur.Width exceeds
// containerWidth. Row height is the tallest chip on the row. A chip wider than the
// container still gets a row of its own at x = 0. The result has one frame per size,
// in input order.
func Wrap(sizes []Size, containerWidth int, cfg Config) []Frame {
	if len(sizes) == 0 {
		return []Frame{}
	}
	gap := max(cfg.Gap, 0)
	spacing := max(cfg.LineSpacing, 0)

	frames := make([]Frame, len(sizes))
	rowY := 0
	rowH := 0
	for i, s := range sizes {
		w := max(s.Width, 0)
		h := max(s.Height, 0)

		if i == 0 {
			frames[i] = Frame{X: 0, Y: 0, Width: w, Height: h}
			rowH = h
			continue
		}

		prev := frames[i-1]
		x := prev.MaxX() + gap
		if x+w > containerWidth {
			rowY += rowH + spacing
			rowH = 0
			x = 0
		}
		frames[i] = Frame{X: x, Y: rowY, Width: w, Height: h}
		rowH = max(rowH, h)
	}
	return frames
}

// Rows groups frame indices by row, top to bottom. A row ends where the next frame
// moves down or restarts left of its predecessor.
func Rows(frames []Frame) [][]int {
	var rows [][]int
	for i, f := range frames {
		if i == 0 || f.Y != frames[i-1].Y || f.X < frames[i-1].MaxX() {
			rows = append(rows, []int{i})
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], i)
	}
	return rows
}

// Bounds returns the smallest size covering every frame from the origin.
func Bounds(frames []Frame) Size {
	var b Size
	for _, f := range frames {
		b.Width = max(b.Width, f.MaxX())
		b.Height = max(b.Height, f.MaxY())
	}
	return b
}

// HitTest returns the index of the frame containing (x, y), or -1.
func HitTest(frames []Frame, x, y int) int {
	for i, f := range frames {
		if f.Contains(x, y) {
			return i
		}
	}
	return -1
}
