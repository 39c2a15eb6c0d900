package layout

// Vertical returns the frame on the row above (dir < 0) or below (dir > 0) of frame i
// whose horizontal center is closest to frame i's center. Ties go to the leftmost
// frame. It returns i when there is no such row.
func Vertical(frames []Frame, i, dir int) int {
	if i < 0 || i >= len(frames) || dir == 0 {
		return i
	}
	rows := Rows(frames)
	cur := -1
	for r, idxs := range rows {
		for _, j := range idxs {
			if j == i {
				cur = r
			}
		}
	}
	target := cur + 1
	if dir < 0 {
		target = cur - 1
	}
	if cur < 0 || target < 0 || target >= len(rows) {
		return i
	}

	center := 2*frames[i].X + frames[i].Width
	best := -1
	bestDist := 0
	for _, j := range rows[target] {
		c := 2*frames[j].X + frames[j].Width
		d := c - center
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}
