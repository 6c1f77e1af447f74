package morphospace

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
	}{
		{"", StrategyLinear},
		{"linear", StrategyLinear},
		{"kdtree", StrategyKDTree},
		{"kd-tree", StrategyKDTree},
	}
	for _, c := range cases {
		got, err := ParseStrategy(c.in)
		if err != nil {
			t.Errorf("ParseStrategy(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseStrategy("octree"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(\"octree\") error = %v, want ErrUnknownStrategy", err)
	}
}

func TestNewWithConfigUnknownStrategy(t *testing.T) {
	_, err := NewWithConfig(Config{Strategy: Strategy(42)})
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("NewWithConfig error = %v, want ErrUnknownStrategy", err)
	}
}

// parityPoints is a fixed population with clusters, colinear runs and
// exact duplicates, so tie handling gets exercised.
func parityPoints() []Coordinates {
	var pts []Coordinates
	for x := 0; x <= 4; x++ {
		for y := 1; y <= 4; y++ {
			z := (x*7 + y*3) % 9
			pts = append(pts, Coordinates{X: x, Y: y, Z: z})
		}
	}
	pts = append(pts,
		Coordinates{X: 2, Y: 2, Z: 2},
		Coordinates{X: 2, Y: 2, Z: 2},
		Coordinates{X: 0, Y: 1, Z: 1},
		Coordinates{X: 0, Y: 1, Z: -1},
		Coordinates{X: 1, Y: 1, Z: 0},
		Coordinates{X: -1, Y: 1, Z: 0},
	)
	return pts
}

func parityPair(t *testing.T) (*MorphemeSpace, *MorphemeSpace) {
	t.Helper()
	lin, err := NewWithConfig(Config{Strategy: StrategyLinear})
	if err != nil {
		t.Fatal(err)
	}
	kd, err := NewWithConfig(Config{Strategy: StrategyKDTree})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range parityPoints() {
		m := placed(fmt.Sprintf("m%02d", i), "r", p.X, p.Y, p.Z)
		mustAdd(t, lin, m)
		mustAdd(t, kd, m)
	}
	return lin, kd
}

func sameForms(a, b []Morpheme) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Form != b[i].Form {
			return false
		}
	}
	return true
}

func TestStrategyParityAtCoordinates(t *testing.T) {
	lin, kd := parityPair(t)
	for _, p := range []Coordinates{
		{X: 2, Y: 2, Z: 2},
		{X: 0, Y: 1, Z: 1},
		{X: 3, Y: 3, Z: 3},
		{X: 9, Y: 9, Z: 9},
	} {
		l := lin.AtCoordinates(p.X, p.Y, p.Z)
		k := kd.AtCoordinates(p.X, p.Y, p.Z)
		if !sameForms(l, k) {
			t.Errorf("AtCoordinates(%v): linear %v, kdtree %v", p, forms(l), forms(k))
		}
	}
}

func TestStrategyParityInRange(t *testing.T) {
	lin, kd := parityPair(t)
	centers := []Coordinates{
		{X: 0, Y: 1, Z: 0},
		{X: 2, Y: 2, Z: 2},
		{X: 4, Y: 4, Z: 8},
	}
	for _, c := range centers {
		for _, r := range []float64{0, 1, 1.5, 2, 3.2, 10} {
			l := lin.InRange(c, r)
			k := kd.InRange(c, r)
			if !sameForms(l, k) {
				t.Errorf("InRange(%v, %v): linear %v, kdtree %v", c, r, forms(l), forms(k))
			}
			ld := lin.InRangeByDistance(c, r)
			kd2 := kd.InRangeByDistance(c, r)
			if !sameForms(ld, kd2) {
				t.Errorf("InRangeByDistance(%v, %v): linear %v, kdtree %v", c, r, forms(ld), forms(kd2))
			}
		}
	}
}

func TestStrategyParityFindNearest(t *testing.T) {
	lin, kd := parityPair(t)
	probes := []Coordinates{
		{X: 0, Y: 1, Z: 0},
		{X: 2, Y: 2, Z: 1},
		{X: 5, Y: 2, Z: 4},
		{X: -3, Y: 1, Z: -3},
	}
	for _, p := range probes {
		for _, k := range []int{1, 2, 5, 11, 100} {
			probe := placed("probe", "q", p.X, p.Y, p.Z)
			l := lin.FindNearest(probe, k)
			kn := kd.FindNearest(probe, k)
			if len(l) != len(kn) {
				t.Fatalf("FindNearest(%v, %d): linear %d results, kdtree %d", p, k, len(l), len(kn))
			}
			for i := range l {
				if l[i].Morpheme.Form != kn[i].Morpheme.Form || l[i].Distance != kn[i].Distance {
					t.Errorf("FindNearest(%v, %d)[%d]: linear %q@%v, kdtree %q@%v",
						p, k, i,
						l[i].Morpheme.Form, l[i].Distance,
						kn[i].Morpheme.Form, kn[i].Distance)
				}
			}
		}
	}
}

func TestStrategyParityEquidistantProbe(t *testing.T) {
	// The probe sits exactly between several members; both strategies
	// must break the ties by insertion order identically.
	lin, kd := parityPair(t)
	probe := placed("probe", "q", 0, 1, 0)

	l := lin.FindNearest(probe, 4)
	k := kd.FindNearest(probe, 4)
	for i := range l {
		if l[i].Morpheme.Form != k[i].Morpheme.Form {
			t.Fatalf("tie order diverged at %d: linear %v, kdtree %v", i,
				neighborForms(l), neighborForms(k))
		}
	}
}

func neighborForms(ns []Neighbor) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Morpheme.Form
	}
	return out
}
