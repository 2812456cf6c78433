package dataset

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/whiskers/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		d       Dataset
		wantErr bool
	}{
		{
			name:    "valid vector",
			d:       NewVector([]float64{1, 2, 3}),
			wantErr: false,
		},
		{
			name:    "vector with NaN is allowed",
			d:       NewVector([]float64{1, math.NaN(), 3}),
			wantErr: false,
		},
		{
			name:    "nil dataset",
			d:       nil,
			wantErr: true,
		},
		{
			name:    "empty vector",
			d:       NewVector(nil),
			wantErr: true,
		},
		{
			name:    "vector with Inf",
			d:       NewVector([]float64{1, math.Inf(1), 3}),
			wantErr: true,
		},
		{
			name:    "series index length mismatch",
			d:       NewSeries("x", []string{"a", "b"}, []float64{1, 2, 3}),
			wantErr: true,
		},
		{
			name:    "valid series with nil index",
			d:       NewSeries("x", nil, []float64{1, 2, 3}),
			wantErr: false,
		},
		{
			name: "ragged table",
			d: NewTable([]string{"a", "b"}, nil, [][]float64{
				{1, 2, 3},
				{4, 5},
			}),
			wantErr: true,
		},
		{
			name: "table column name count mismatch",
			d: NewTable([]string{"a"}, nil, [][]float64{
				{1, 2},
				{3, 4},
			}),
			wantErr: true,
		},
		{
			name: "table index length mismatch",
			d: NewTable(nil, []string{"r0"}, [][]float64{
				{1, 2},
				{3, 4},
			}),
			wantErr: true,
		},
		{
			name: "valid unlabeled table",
			d: NewTable(nil, nil, [][]float64{
				{1, 2},
				{3, 4},
			}),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("test", tt.d)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var valErr *errors.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("error should be a *ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestMapPreservesShape(t *testing.T) {
	double := func(_, _ int, v float64) float64 { return 2 * v }

	t.Run("vector", func(t *testing.T) {
		in := NewVector([]float64{1, 2, 3})
		out := Map(in, double)

		v, ok := out.(*Vector)
		if !ok {
			t.Fatalf("Map(Vector) returned %v, want Vector", out.Kind())
		}
		want := []float64{2, 4, 6}
		for i, x := range v.Values {
			if x != want[i] {
				t.Errorf("Values[%d] = %v, want %v", i, x, want[i])
			}
		}
		// input must be untouched
		if in.Values[0] != 1 {
			t.Error("Map mutated its input")
		}
	})

	t.Run("series", func(t *testing.T) {
		in := NewSeries("temp", []string{"a", "b"}, []float64{1, 2})
		out := Map(in, double)

		s, ok := out.(*Series)
		if !ok {
			t.Fatalf("Map(Series) returned %v, want Series", out.Kind())
		}
		if s.Name != "temp" {
			t.Errorf("Name = %q, want temp", s.Name)
		}
		if s.RowLabel(1) != "b" {
			t.Errorf("RowLabel(1) = %q, want b", s.RowLabel(1))
		}
	})

	t.Run("table", func(t *testing.T) {
		in := NewTable([]string{"x", "y"}, []string{"r0", "r1"}, [][]float64{
			{1, 2},
			{3, 4},
		})
		out := Map(in, double)

		tab, ok := out.(*Table)
		if !ok {
			t.Fatalf("Map(Table) returned %v, want Table", out.Kind())
		}
		if tab.ColumnName(1) != "y" {
			t.Errorf("ColumnName(1) = %q, want y", tab.ColumnName(1))
		}
		if tab.At(1, 1) != 8 {
			t.Errorf("At(1,1) = %v, want 8", tab.At(1, 1))
		}
		if tab.RowLabel(0) != "r0" {
			t.Errorf("RowLabel(0) = %q, want r0", tab.RowLabel(0))
		}
	})
}

func TestMapRowColumnArguments(t *testing.T) {
	in := NewTable(nil, nil, [][]float64{
		{0, 0},
		{0, 0},
	})
	out := Map(in, func(i, j int, _ float64) float64 {
		return float64(10*i + j)
	})
	want := [][]float64{
		{0, 10},
		{1, 11},
	}
	for j := range want {
		for i := range want[j] {
			if got := out.At(i, j); got != want[j][i] {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, want[j][i])
			}
		}
	}
}

func TestAttachIndicators(t *testing.T) {
	t.Run("vector becomes unlabeled two-column table", func(t *testing.T) {
		in := NewVector([]float64{1, 2})
		out := AttachIndicators(in, [][]float64{{0, 1}}, "_outlier")

		tab, ok := out.(*Table)
		if !ok {
			t.Fatalf("result kind = %v, want Table", out.Kind())
		}
		if tab.Cols() != 2 {
			t.Fatalf("Cols() = %d, want 2", tab.Cols())
		}
		if tab.Columns != nil {
			t.Errorf("Columns = %v, want nil for unlabeled input", tab.Columns)
		}
		if tab.At(1, 1) != 1 {
			t.Errorf("indicator At(1,1) = %v, want 1", tab.At(1, 1))
		}
	})

	t.Run("series becomes named pair", func(t *testing.T) {
		in := NewSeries("flow", []string{"a", "b"}, []float64{1, 2})
		out := AttachIndicators(in, [][]float64{{0, -1}}, "_outlier")

		tab := out.(*Table)
		if tab.ColumnName(0) != "flow" || tab.ColumnName(1) != "flow_outlier" {
			t.Errorf("column names = %v, want [flow flow_outlier]", tab.Columns)
		}
		if tab.RowLabel(1) != "b" {
			t.Errorf("RowLabel(1) = %q, want b", tab.RowLabel(1))
		}
	})

	t.Run("table appends suffixed columns after originals", func(t *testing.T) {
		in := NewTable([]string{"x", "y"}, nil, [][]float64{
			{1, 2},
			{3, 4},
		})
		codes := [][]float64{
			{0, 1},
			{-1, 0},
		}
		out := AttachIndicators(in, codes, "_outlier")

		tab := out.(*Table)
		wantNames := []string{"x", "y", "x_outlier", "y_outlier"}
		for j, name := range wantNames {
			if tab.ColumnName(j) != name {
				t.Errorf("ColumnName(%d) = %q, want %q", j, tab.ColumnName(j), name)
			}
		}
		if tab.At(0, 3) != -1 {
			t.Errorf("At(0,3) = %v, want -1", tab.At(0, 3))
		}
	})
}

func TestColumn(t *testing.T) {
	tab := NewTable([]string{"x", "y"}, nil, [][]float64{
		{1, 2},
		{3, 4},
	})
	col := Column(tab, 1)
	if col[0] != 3 || col[1] != 4 {
		t.Errorf("Column(1) = %v, want [3 4]", col)
	}

	// mutating the copy must not touch the table
	col[0] = 99
	if tab.At(0, 1) != 3 {
		t.Error("Column() should return a copy")
	}
}

func TestMatrixBridge(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	tab := FromMatrix(m)

	if tab.Rows() != 2 || tab.Cols() != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", tab.Rows(), tab.Cols())
	}
	if tab.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %v, want 6", tab.At(1, 2))
	}

	back := AsMatrix(tab)
	if !mat.EqualApprox(m, back, 1e-12) {
		t.Error("FromMatrix/AsMatrix round trip changed values")
	}
}
