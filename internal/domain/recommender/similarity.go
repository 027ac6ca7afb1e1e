package recommender

// SimilarityMatrix is a dense, symmetric row×row cosine similarity matrix.
type SimilarityMatrix struct {
	dim    int
	values []float64
}

func newSimilarityMatrix(rows [][]float64) *SimilarityMatrix {
	n := len(rows)
	m := &SimilarityMatrix{dim: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			score := dot(rows[i], rows[j])
			m.values[i*n+j] = score
			m.values[j*n+i] = score
		}
	}
	return m
}

// Dim returns the number of rows (and columns).
func (m *SimilarityMatrix) Dim() int {
	if m == nil {
		return 0
	}
	return m.dim
}

// At returns the similarity between rows i and j.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.values[i*m.dim+j]
}

// Row returns a copy of row i.
func (m *SimilarityMatrix) Row(i int) []float64 {
	out := make([]float64, m.dim)
	copy(out, m.values[i*m.dim:(i+1)*m.dim])
	return out
}

// MeanOfRows averages the selected rows column by column.
func (m *SimilarityMatrix) MeanOfRows(rows []int) []float64 {
	out := make([]float64, m.dim)
	if len(rows) == 0 {
		return out
	}
	for _, r := range rows {
		base := r * m.dim
		for j := 0; j < m.dim; j++ {
			out[j] += m.values[base+j]
		}
	}
	count := float64(len(rows))
	for j := range out {
		out[j] /= count
	}
	return out
}
