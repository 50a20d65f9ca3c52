package bond

import "github.com/matzehuels/bricklayer/pkg/wall"

// Stretcher lays a stretcher bond: even courses open with a half brick, odd
// courses start with a full brick at x=0.
func Stretcher(width, height float64) wall.Layout {
	return procedural(PatternStretcher, width, height, func(b *courseBuilder) {
		if b.index%2 == 0 && !b.lead(wall.HalfBrickWidth) {
			return
		}
		b.fill(wall.FullBrickWidth)
	})
}

// EnglishCross lays an English cross bond: even courses are a quarter-brick
// closer followed by half bricks (headers), odd courses are full bricks.
func EnglishCross(width, height float64) wall.Layout {
	return procedural(PatternEnglishCross, width, height, func(b *courseBuilder) {
		if b.index%2 == 0 {
			if b.lead(wall.QuarterBrickWidth) {
				b.fill(wall.HalfBrickWidth)
			}
			return
		}
		b.fill(wall.FullBrickWidth)
	})
}

// Flemish lays a Flemish bond: full and half bricks alternate within every
// course, and odd courses are shifted by a half-sized leader.
func Flemish(width, height float64) wall.Layout {
	return procedural(PatternFlemish, width, height, func(b *courseBuilder) {
		full := true
		if b.index%2 == 1 {
			if !b.lead(wall.HalfBrickWidth / 2) {
				return
			}
			full = false
		}
		for {
			w := wall.HalfBrickWidth
			if full {
				w = wall.FullBrickWidth
			}
			if !b.fits(w) {
				return
			}
			b.add(w)
			full = !full
		}
	})
}
