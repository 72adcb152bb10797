package vectors

import "testing"

func TestNewIntervalNormalizesOrder(t *testing.T) {
	i := NewInterval(5, -2)
	if i.Lo != -2 || i.Hi != 5 {
		t.Errorf("got [%v, %v], want [-2, 5]", i.Lo, i.Hi)
	}
}

func TestIntervalIntersect(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Interval
		want    Interval
		overlap bool
	}{
		{"overlapping", NewInterval(0, 5), NewInterval(3, 8), Interval{3, 5}, true},
		{"contained", NewInterval(0, 10), NewInterval(2, 4), Interval{2, 4}, true},
		{"touching endpoints", NewInterval(0, 2), NewInterval(2, 4), Interval{2, 2}, true},
		{"disjoint", NewInterval(0, 1), NewInterval(2, 3), Interval{}, false},
		{"disjoint reversed", NewInterval(2, 3), NewInterval(0, 1), Interval{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.overlap {
				t.Fatalf("overlap: got %v, want %v", ok, tt.overlap)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	i := NewInterval(-1, 1)
	for _, x := range []float64{-1, 0, 1} {
		if !i.Contains(x) {
			t.Errorf("Contains(%v) = false, want true", x)
		}
	}
	if i.Contains(1.0001) {
		t.Error("Contains(1.0001) = true, want false")
	}
}
