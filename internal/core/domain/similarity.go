package domain

import "fmt"

// SimilarityMatrix is a dense, square, symmetric matrix of similarity scores.
// Entry (i, j) is the similarity between documents i and j.
type SimilarityMatrix struct {
	size   int
	values []float64
}

// NewSimilarityMatrix creates an n x n matrix of zeros.
func NewSimilarityMatrix(n int) *SimilarityMatrix {
	if n < 0 {
		n = 0
	}
	return &SimilarityMatrix{
		size:   n,
		values: make([]float64, n*n),
	}
}

// SimilarityMatrixFromValues wraps row-major values of an n x n matrix.
// The slice is used as is and must not be modified afterwards.
func SimilarityMatrixFromValues(n int, values []float64) (*SimilarityMatrix, error) {
	if n < 0 || len(values) != n*n {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrInvalidInput, len(values), n, n)
	}
	return &SimilarityMatrix{size: n, values: values}, nil
}

// SimilarityMatrixFromRows copies a row-major [][]float64 into a matrix.
// Every row must have exactly len(rows) entries.
func SimilarityMatrixFromRows(rows [][]float64) (*SimilarityMatrix, error) {
	n := len(rows)
	m := NewSimilarityMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInput, i, len(row), n)
		}
		copy(m.values[i*n:(i+1)*n], row)
	}
	return m, nil
}

// Size returns N.
func (m *SimilarityMatrix) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// At returns entry (i, j). It panics on out-of-range indices like a slice would.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.values[i*m.size+j]
}

// SetSymmetric writes v to both (i, j) and (j, i).
// Only builders call it; a published matrix is never modified.
func (m *SimilarityMatrix) SetSymmetric(i, j int, v float64) {
	m.values[i*m.size+j] = v
	m.values[j*m.size+i] = v
}

// Row returns a copy of row index.
func (m *SimilarityMatrix) Row(index int) ([]float64, error) {
	if index < 0 || index >= m.Size() {
		return nil, OutOfRange(index, m.Size())
	}
	row := make([]float64, m.size)
	copy(row, m.values[index*m.size:(index+1)*m.size])
	return row, nil
}

// Values returns the row-major backing slice. Callers must treat it as read-only.
func (m *SimilarityMatrix) Values() []float64 {
	return m.values
}

// ScoreEntry pairs a document index with its similarity to the selected document.
type ScoreEntry struct {
	Index int
	Score float64
}
