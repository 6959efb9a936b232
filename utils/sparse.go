package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
)

// COO is the triplet (coordinate) form used during hierarchy setup. Entries
// are appended freely and put into canonical form - sorted by (row, col) with
// duplicates summed - before a CSR view is derived.
type COO struct {
	nr, nc int
	RI, CI []int
	V      []float64
	sorted bool
}

func NewCOO(nr, nc, nnzHint int) (m *COO) {
	m = &COO{
		nr: nr,
		nc: nc,
		RI: make([]int, 0, nnzHint),
		CI: make([]int, 0, nnzHint),
		V:  make([]float64, 0, nnzHint),
	}
	return
}

func (m *COO) Dims() (nr, nc int) { return m.nr, m.nc }
func (m *COO) Nnz() int           { return len(m.V) }

func (m *COO) Append(i, j int, val float64) {
	if i < 0 || i >= m.nr || j < 0 || j >= m.nc {
		panic(fmt.Errorf("entry (%d,%d) out of bounds for %dx%d matrix", i, j, m.nr, m.nc))
	}
	m.RI = append(m.RI, i)
	m.CI = append(m.CI, j)
	m.V = append(m.V, val)
	m.sorted = false
}

func (m *COO) Len() int { return len(m.V) }
func (m *COO) Less(a, b int) bool {
	if m.RI[a] != m.RI[b] {
		return m.RI[a] < m.RI[b]
	}
	return m.CI[a] < m.CI[b]
}
func (m *COO) Swap(a, b int) {
	m.RI[a], m.RI[b] = m.RI[b], m.RI[a]
	m.CI[a], m.CI[b] = m.CI[b], m.CI[a]
	m.V[a], m.V[b] = m.V[b], m.V[a]
}

// Canonicalize sorts entries by (row, col) and merges duplicates by summation.
func (m *COO) Canonicalize() *COO {
	if m.sorted {
		return m
	}
	sort.Sort(m)
	var iw int
	for ir := 0; ir < len(m.V); ir++ {
		if iw > 0 && m.RI[ir] == m.RI[iw-1] && m.CI[ir] == m.CI[iw-1] {
			m.V[iw-1] += m.V[ir]
			continue
		}
		m.RI[iw] = m.RI[ir]
		m.CI[iw] = m.CI[ir]
		m.V[iw] = m.V[ir]
		iw++
	}
	m.RI = m.RI[:iw]
	m.CI = m.CI[:iw]
	m.V = m.V[:iw]
	m.sorted = true
	return m
}

func (m *COO) Copy() (R *COO) {
	R = NewCOO(m.nr, m.nc, m.Nnz())
	R.RI = append(R.RI, m.RI...)
	R.CI = append(R.CI, m.CI...)
	R.V = append(R.V, m.V...)
	R.sorted = m.sorted
	return
}

// Transpose returns the exact structural/value transpose in canonical form.
func (m *COO) Transpose() (R *COO) {
	R = NewCOO(m.nc, m.nr, m.Nnz())
	for k := range m.V {
		R.RI = append(R.RI, m.CI[k])
		R.CI = append(R.CI, m.RI[k])
		R.V = append(R.V, m.V[k])
	}
	R.Canonicalize()
	return
}

// Diagonal extracts the main diagonal, zero where absent.
func (m *COO) Diagonal() (d []float64) {
	d = make([]float64, m.nr)
	for k := range m.V {
		if m.RI[k] == m.CI[k] {
			d[m.RI[k]] += m.V[k]
		}
	}
	return
}

// ToCSR derives the compressed-row view over this matrix. The returned view
// aliases the column index and value arrays of the canonical triplet form, so
// it must be re-derived after any further mutation of the receiver.
func (m *COO) ToCSR() (R CSR) {
	m.Canonicalize()
	ia := make([]int, m.nr+1)
	for _, i := range m.RI {
		ia[i+1]++
	}
	for i := 0; i < m.nr; i++ {
		ia[i+1] += ia[i]
	}
	R = CSR{
		M:  sparse.NewCSR(m.nr, m.nc, ia, m.CI, m.V),
		Ia: ia,
		Ja: m.CI,
		V:  m.V,
		nr: m.nr,
		nc: m.nc,
	}
	return
}

func (m *COO) ToDense() (R Matrix) {
	m.Canonicalize()
	R = NewMatrix(m.nr, m.nc)
	for k := range m.V {
		R.Set(m.RI[k], m.CI[k], m.V[k])
	}
	return
}

// FromSparser rebuilds triplet form from any sparse matrix, used to bring the
// results of sparse-sparse products back into setup form.
func FromSparser(nr, nc int, s sparse.Sparser) (m *COO) {
	m = NewCOO(nr, nc, s.NNZ())
	s.DoNonZero(func(i, j int, v float64) {
		m.Append(i, j, v)
	})
	m.Canonicalize()
	return
}

// CSR is the row-oriented solve-time view. It does not own its arrays.
type CSR struct {
	M      *sparse.CSR
	Ia, Ja []int
	V      []float64
	nr, nc int
}

func (c CSR) Dims() (nr, nc int) { return c.nr, c.nc }
func (c CSR) Nnz() int           { return len(c.V) }

// MulVec computes y = A*x over the raw CSR arrays.
func (c CSR) MulVec(x, y []float64) {
	if len(x) != c.nc || len(y) != c.nr {
		panic(fmt.Errorf("MulVec dimension mismatch: A is %dx%d, len(x)=%d, len(y)=%d",
			c.nr, c.nc, len(x), len(y)))
	}
	for i := 0; i < c.nr; i++ {
		var sum float64
		for jp := c.Ia[i]; jp < c.Ia[i+1]; jp++ {
			sum += c.V[jp] * x[c.Ja[jp]]
		}
		y[i] = sum
	}
}

func (c CSR) Diagonal() (d []float64) {
	d = make([]float64, c.nr)
	for i := 0; i < c.nr; i++ {
		for jp := c.Ia[i]; jp < c.Ia[i+1]; jp++ {
			if c.Ja[jp] == i {
				d[i] += c.V[jp]
			}
		}
	}
	return
}

// SpMatMul computes the sparse-sparse product a*b in triplet form.
func SpMatMul(a, b CSR) (R *COO) {
	var (
		nrA, ncA = a.Dims()
		nrB, ncB = b.Dims()
	)
	if ncA != nrB {
		panic(fmt.Errorf("SpMatMul dimension mismatch: %dx%d * %dx%d", nrA, ncA, nrB, ncB))
	}
	prod := sparse.NewCSR(nrA, ncB, nil, nil, nil)
	prod.Mul(a.M, b.M)
	R = FromSparser(nrA, ncB, prod)
	return
}
