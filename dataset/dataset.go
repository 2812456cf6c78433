// Package dataset defines the data containers accepted by whiskers
// estimators: an unlabeled Vector, a named Series with row labels, and a
// Table of named columns over a shared set of row labels.
//
// The three containers form a closed variant behind the Dataset interface.
// Estimators operate on the interface through two shape-preserving
// primitives: Map, which rewrites every value in place of its shape, and
// AttachIndicators, which widens a dataset with one parallel column per
// original column. Mode logic therefore never branches per container type.
//
// NaN is the missing-value marker and is admitted everywhere; infinities
// are rejected by Validate.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/whiskers/pkg/errors"
)

// Kind identifies the concrete container behind a Dataset.
type Kind int

const (
	// KindVector is a single unlabeled sequence.
	KindVector Kind = iota
	// KindSeries is a single named sequence with row labels.
	KindSeries
	// KindTable is an ordered collection of named columns.
	KindTable
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "Vector"
	case KindSeries:
		return "Series"
	case KindTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Dataset is the closed set of containers an estimator accepts.
// The only implementations are *Vector, *Series and *Table.
type Dataset interface {
	// Kind reports the concrete container type.
	Kind() Kind

	// Rows returns the number of observations.
	Rows() int

	// Cols returns the number of columns (1 for Vector and Series).
	Cols() int

	// At returns the value at row i, column j.
	At(i, j int) float64

	// ColumnName returns the name of column j, or "" when unlabeled.
	ColumnName(j int) string

	// RowLabel returns the positional label of row i.
	RowLabel(i int) string

	sealed()
}

// ---------------------------------------------------------------------------
// Vector
// ---------------------------------------------------------------------------

// Vector is a single unlabeled sequence of observations.
type Vector struct {
	Values []float64
}

// NewVector creates a Vector over the given values. The slice is used
// directly, not copied.
func NewVector(values []float64) *Vector {
	return &Vector{Values: values}
}

func (v *Vector) Kind() Kind              { return KindVector }
func (v *Vector) Rows() int               { return len(v.Values) }
func (v *Vector) Cols() int               { return 1 }
func (v *Vector) At(i, _ int) float64     { return v.Values[i] }
func (v *Vector) ColumnName(_ int) string { return "" }
func (v *Vector) RowLabel(i int) string   { return strconv.Itoa(i) }
func (v *Vector) sealed()                 {}

// String returns a compact representation for debugging.
func (v *Vector) String() string {
	return fmt.Sprintf("Vector%v", v.Values)
}

// ---------------------------------------------------------------------------
// Series
// ---------------------------------------------------------------------------

// Series is a single named sequence with per-element row labels.
// A nil Index means positional labels "0", "1", ...
type Series struct {
	Name   string
	Index  []string
	Values []float64
}

// NewSeries creates a Series. Index may be nil for positional labels;
// otherwise it must have the same length as values (checked by Validate).
func NewSeries(name string, index []string, values []float64) *Series {
	return &Series{Name: name, Index: index, Values: values}
}

func (s *Series) Kind() Kind              { return KindSeries }
func (s *Series) Rows() int               { return len(s.Values) }
func (s *Series) Cols() int               { return 1 }
func (s *Series) At(i, _ int) float64     { return s.Values[i] }
func (s *Series) ColumnName(_ int) string { return s.Name }
func (s *Series) sealed()                 {}

func (s *Series) RowLabel(i int) string {
	if s.Index == nil {
		return strconv.Itoa(i)
	}
	return s.Index[i]
}

// String returns a compact representation for debugging.
func (s *Series) String() string {
	return fmt.Sprintf("Series(%s)%v", s.Name, s.Values)
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

// Table is an ordered collection of columns sharing one set of row labels.
// Values is column-major: Values[j][i] is row i of column j. A nil Columns
// slice means the table is an unlabeled matrix; a nil Index means
// positional row labels.
type Table struct {
	Columns []string
	Index   []string
	Values  [][]float64
}

// NewTable creates a Table. Columns and index may be nil; shape invariants
// are checked by Validate.
func NewTable(columns []string, index []string, values [][]float64) *Table {
	return &Table{Columns: columns, Index: index, Values: values}
}

func (t *Table) Kind() Kind { return KindTable }

func (t *Table) Rows() int {
	if len(t.Values) == 0 {
		return 0
	}
	return len(t.Values[0])
}

func (t *Table) Cols() int           { return len(t.Values) }
func (t *Table) At(i, j int) float64 { return t.Values[j][i] }
func (t *Table) sealed()             {}

func (t *Table) ColumnName(j int) string {
	if t.Columns == nil {
		return ""
	}
	return t.Columns[j]
}

func (t *Table) RowLabel(i int) string {
	if t.Index == nil {
		return strconv.Itoa(i)
	}
	return t.Index[i]
}

// String returns a compact representation for debugging.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("Table[")
	for j := range t.Values {
		if j > 0 {
			b.WriteString(" ")
		}
		name := t.ColumnName(j)
		if name == "" {
			name = strconv.Itoa(j)
		}
		fmt.Fprintf(&b, "%s:%v", name, t.Values[j])
	}
	b.WriteString("]")
	return b.String()
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// Validate checks that d is a well-formed numeric dataset: non-nil,
// non-empty, rectangular, label lengths consistent with the data, and free
// of infinities. NaN entries are allowed as missing-value markers.
// op names the calling operation for error reporting.
func Validate(op string, d Dataset) error {
	if d == nil {
		return errors.NewValidationError(op, "dataset is nil", nil)
	}
	if d.Rows() == 0 || d.Cols() == 0 {
		return errors.NewValidationError(op, "dataset is empty", fmt.Sprintf("%dx%d", d.Rows(), d.Cols()))
	}

	switch v := d.(type) {
	case *Vector:
		// nothing beyond the value scan
	case *Series:
		if v.Index != nil && len(v.Index) != len(v.Values) {
			return errors.NewValidationError(op, "index length does not match values",
				fmt.Sprintf("index=%d values=%d", len(v.Index), len(v.Values)))
		}
	case *Table:
		rows := len(v.Values[0])
		for j, col := range v.Values {
			if len(col) != rows {
				return errors.NewValidationError(op, "table columns have unequal lengths",
					fmt.Sprintf("column %d has %d rows, expected %d", j, len(col), rows))
			}
		}
		if v.Columns != nil && len(v.Columns) != len(v.Values) {
			return errors.NewValidationError(op, "column name count does not match columns",
				fmt.Sprintf("names=%d columns=%d", len(v.Columns), len(v.Values)))
		}
		if v.Index != nil && len(v.Index) != rows {
			return errors.NewValidationError(op, "index length does not match rows",
				fmt.Sprintf("index=%d rows=%d", len(v.Index), rows))
		}
	}

	for j := 0; j < d.Cols(); j++ {
		for i := 0; i < d.Rows(); i++ {
			if math.IsInf(d.At(i, j), 0) {
				return errors.NewValidationError(op, "dataset contains non-finite values",
					fmt.Sprintf("row %d, column %d", i, j))
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Shape primitives
// ---------------------------------------------------------------------------

// Column returns a copy of column j.
func Column(d Dataset, j int) []float64 {
	out := make([]float64, d.Rows())
	for i := range out {
		out[i] = d.At(i, j)
	}
	return out
}

// Map returns a dataset of the same shape, type and labels as d with every
// value rewritten by f(row, col, value).
func Map(d Dataset, f func(i, j int, v float64) float64) Dataset {
	switch v := d.(type) {
	case *Vector:
		out := make([]float64, len(v.Values))
		for i, x := range v.Values {
			out[i] = f(i, 0, x)
		}
		return &Vector{Values: out}
	case *Series:
		out := make([]float64, len(v.Values))
		for i, x := range v.Values {
			out[i] = f(i, 0, x)
		}
		return &Series{Name: v.Name, Index: cloneLabels(v.Index), Values: out}
	case *Table:
		out := make([][]float64, len(v.Values))
		for j, col := range v.Values {
			out[j] = make([]float64, len(col))
			for i, x := range col {
				out[j][i] = f(i, j, x)
			}
		}
		return &Table{Columns: cloneLabels(v.Columns), Index: cloneLabels(v.Index), Values: out}
	default:
		panic(fmt.Sprintf("dataset: unknown kind %v", d.Kind()))
	}
}

// AttachIndicators widens d with one parallel column per original column.
// codes is column-major and must match the shape of d. Column naming
// follows the original column name plus suffix; an unlabeled Vector
// becomes an unlabeled two-column Table.
func AttachIndicators(d Dataset, codes [][]float64, suffix string) Dataset {
	switch v := d.(type) {
	case *Vector:
		return &Table{Values: [][]float64{cloneValues(v.Values), cloneValues(codes[0])}}
	case *Series:
		return &Table{
			Columns: []string{v.Name, v.Name + suffix},
			Index:   cloneLabels(v.Index),
			Values:  [][]float64{cloneValues(v.Values), cloneValues(codes[0])},
		}
	case *Table:
		values := make([][]float64, 0, 2*len(v.Values))
		for _, col := range v.Values {
			values = append(values, cloneValues(col))
		}
		for _, col := range codes {
			values = append(values, cloneValues(col))
		}
		var columns []string
		if v.Columns != nil {
			columns = make([]string, 0, 2*len(v.Columns))
			columns = append(columns, v.Columns...)
			for _, name := range v.Columns {
				columns = append(columns, name+suffix)
			}
		}
		return &Table{Columns: columns, Index: cloneLabels(v.Index), Values: values}
	default:
		panic(fmt.Sprintf("dataset: unknown kind %v", d.Kind()))
	}
}

func cloneLabels(labels []string) []string {
	if labels == nil {
		return nil
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

func cloneValues(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}

// ---------------------------------------------------------------------------
// gonum bridge
// ---------------------------------------------------------------------------

// FromMatrix copies a gonum matrix into an unlabeled Table.
func FromMatrix(m mat.Matrix) *Table {
	r, c := m.Dims()
	values := make([][]float64, c)
	for j := 0; j < c; j++ {
		values[j] = make([]float64, r)
		for i := 0; i < r; i++ {
			values[j][i] = m.At(i, j)
		}
	}
	return &Table{Values: values}
}

// AsMatrix copies any dataset into a dense gonum matrix, dropping labels.
func AsMatrix(d Dataset) *mat.Dense {
	r, c := d.Rows(), d.Cols()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, d.At(i, j))
		}
	}
	return out
}
