package geometry

import "testing"

func TestContains(t *testing.T) {
	outer := Bounds{X: 0, Y: 0, Width: 800, Height: 1300}

	tests := []struct {
		name  string
		inner Bounds
		want  bool
	}{
		{
			name:  "strictly inside",
			inner: Bounds{X: 10, Y: 10, Width: 210, Height: 50},
			want:  true,
		},
		{
			name:  "touching every edge",
			inner: outer,
			want:  true,
		},
		{
			name:  "right edge flush",
			inner: Bounds{X: 590, Y: 0, Width: 210, Height: 50},
			want:  true,
		},
		{
			name:  "crosses right edge",
			inner: Bounds{X: 600, Y: 0, Width: 210, Height: 50},
			want:  false,
		},
		{
			name:  "crosses top edge",
			inner: Bounds{X: 0, Y: 1262.5, Width: 210, Height: 50},
			want:  false,
		},
		{
			name:  "left of origin",
			inner: Bounds{X: -1, Y: 0, Width: 10, Height: 10},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(outer, tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestOverlapsHorizontally(t *testing.T) {
	tests := []struct {
		name string
		a, b Bounds
		want bool
	}{
		{
			name: "partial overlap",
			a:    Bounds{X: 0, Width: 210},
			b:    Bounds{X: 110, Width: 210},
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    Bounds{X: 0, Width: 100},
			b:    Bounds{X: 100, Width: 100},
			want: false,
		},
		{
			name: "separated by joint",
			a:    Bounds{X: 0, Width: 100},
			b:    Bounds{X: 110, Width: 210},
			want: false,
		},
		{
			name: "contained",
			a:    Bounds{X: 0, Width: 210},
			b:    Bounds{X: 50, Width: 45},
			want: true,
		},
		{
			name: "y is ignored",
			a:    Bounds{X: 0, Y: 0, Width: 210, Height: 50},
			b:    Bounds{X: 0, Y: 500, Width: 210, Height: 50},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapsHorizontally(tt.a, tt.b); got != tt.want {
				t.Errorf("OverlapsHorizontally() = %v, want %v", got, tt.want)
			}
			if got := OverlapsHorizontally(tt.b, tt.a); got != tt.want {
				t.Errorf("OverlapsHorizontally() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{name: "same point", p: Point{X: 3, Y: 4}, q: Point{X: 3, Y: 4}, want: 0},
		{name: "horizontal", p: Point{}, q: Point{X: 440}, want: 440},
		{name: "pythagorean", p: Point{}, q: Point{X: 3, Y: 4}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.p, tt.q); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsHelpers(t *testing.T) {
	b := Bounds{X: 10, Y: 20, Width: 100, Height: 50}

	if got := b.Right(); got != 110 {
		t.Errorf("Right() = %v, want 110", got)
	}
	if got := b.Top(); got != 70 {
		t.Errorf("Top() = %v, want 70", got)
	}
	if got := b.Origin(); got != (Point{X: 10, Y: 20}) {
		t.Errorf("Origin() = %v", got)
	}
	if got := b.Center(); got != (Point{X: 60, Y: 45}) {
		t.Errorf("Center() = %v", got)
	}
}
