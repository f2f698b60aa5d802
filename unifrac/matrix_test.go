// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/unifrac/phylo"
	"github.com/js-arias/unifrac/unifrac"
)

var samples = map[string]map[string]float64{
	"sample-1": {"a": 10, "b": 10},
	"sample-2": {"c": 5, "d": 15},
	"sample-3": {"a": 1, "c": 1},
	"sample-4": {"b": 2, "c": 1, "d": 1},
}

var sampleNames = []string{"sample-1", "sample-2", "sample-3", "sample-4"}

func projectAll(t testing.TB, tr *phylo.Tree) []*unifrac.Vector {
	t.Helper()

	vs := make([]*unifrac.Vector, 0, len(sampleNames))
	for _, s := range sampleNames {
		v, err := unifrac.Weighted(tr, samples[s])
		if err != nil {
			t.Fatalf("sample %q: unexpected error: %v", s, err)
		}
		vs = append(vs, v)
	}
	return vs
}

func TestDistMatrix(t *testing.T) {
	tr := newTree(t, balanced)
	vs := projectAll(t, tr)

	m, err := unifrac.DistMatrix(tr, sampleNames, vs, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testMatrix(t, m, vs)
}

// TestDistMatrixSerial checks that the matrix
// is independent of the number of processes.
func TestDistMatrixSerial(t *testing.T) {
	tr := newTree(t, balanced)
	vs := projectAll(t, tr)

	m, err := unifrac.DistMatrix(tr, sampleNames, vs, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testMatrix(t, m, vs)
}

func testMatrix(t testing.TB, m *unifrac.Matrix, vs []*unifrac.Vector) {
	t.Helper()

	if m.Len() != len(sampleNames) {
		t.Fatalf("matrix size: got %d samples, want %d", m.Len(), len(sampleNames))
	}
	if ls := m.Samples(); !reflect.DeepEqual(ls, sampleNames) {
		t.Errorf("samples: got %v, want %v", ls, sampleNames)
	}
	for i, s := range sampleNames {
		if n := m.Sample(i); n != s {
			t.Errorf("sample %d: got %q, want %q", i, n, s)
		}
	}

	for i := range vs {
		if d := m.Dist(i, i); d != 0 {
			t.Errorf("samples %q, %q: got distance %.6f, want 0", sampleNames[i], sampleNames[i], d)
		}
		for j := i + 1; j < len(vs); j++ {
			want, err := unifrac.Dist(vs[i], vs[j])
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d := m.Dist(i, j); d != want {
				t.Errorf("samples %q, %q: got distance %.6f, want %.6f", sampleNames[i], sampleNames[j], d, want)
			}
			if m.Dist(i, j) != m.Dist(j, i) {
				t.Errorf("samples %q, %q: non symmetric matrix", sampleNames[i], sampleNames[j])
			}
		}
	}
}

func TestDistMatrixErrors(t *testing.T) {
	tr := newTree(t, balanced)
	vs := projectAll(t, tr)

	if _, err := unifrac.DistMatrix(tr, sampleNames, vs[:3], 0); !errors.Is(err, unifrac.ErrTreeMismatch) {
		t.Errorf("short vectors: got error %v, want %v", err, unifrac.ErrTreeMismatch)
	}

	other := newTree(t, balanced)
	ov, err := unifrac.Weighted(other, samples["sample-4"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := append(append([]*unifrac.Vector(nil), vs[:3]...), ov)
	if _, err := unifrac.DistMatrix(tr, sampleNames, bad, 0); !errors.Is(err, unifrac.ErrTreeMismatch) {
		t.Errorf("foreign vector: got error %v, want %v", err, unifrac.ErrTreeMismatch)
	}

	p, err := unifrac.Presence(tr, samples["sample-4"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mixed := append(append([]*unifrac.Vector(nil), vs[:3]...), p)
	if _, err := unifrac.DistMatrix(tr, sampleNames, mixed, 0); !errors.Is(err, unifrac.ErrTreeMismatch) {
		t.Errorf("mixed modes: got error %v, want %v", err, unifrac.ErrTreeMismatch)
	}
}

func TestMatrixTSV(t *testing.T) {
	tr := newTree(t, balanced)
	vs := projectAll(t, tr)

	m, err := unifrac.DistMatrix(tr, sampleNames, vs, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	nm, err := unifrac.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if ls := nm.Samples(); !reflect.DeepEqual(ls, sampleNames) {
		t.Errorf("samples: got %v, want %v", ls, sampleNames)
	}
	for i := range sampleNames {
		for j := range sampleNames {
			// written values are rounded
			// to six decimal digits
			if d := nm.Dist(i, j); math.Abs(d-m.Dist(i, j)) > 5e-7 {
				t.Errorf("samples %q, %q: got distance %.6f, want %.6f", sampleNames[i], sampleNames[j], d, m.Dist(i, j))
			}
		}
	}
}

func TestReadTSVErrors(t *testing.T) {
	matrices := map[string]string{
		"no samples":  "sample\nsample-1\n",
		"missing row": "sample\ts1\ts2\ns1\t0.000000\t0.250000\n",
		"bad label":   "sample\ts1\ts2\nsx\t0.000000\t0.250000\ns2\t0.250000\t0.000000\n",
		"bad value":   "sample\ts1\ts2\ns1\t0.000000\tmuch\ns2\t0.250000\t0.000000\n",
		"negative":    "sample\ts1\ts2\ns1\t0.000000\t-0.250000\ns2\t-0.250000\t0.000000\n",
		"diagonal":    "sample\ts1\ts2\ns1\t0.100000\t0.250000\ns2\t0.250000\t0.000000\n",
		"asymmetric":  "sample\ts1\ts2\ns1\t0.000000\t0.250000\ns2\t0.350000\t0.000000\n",
	}
	for name, data := range matrices {
		if _, err := unifrac.ReadTSV(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
