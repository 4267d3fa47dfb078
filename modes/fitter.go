package modes

import (
	"beadchain/types"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ZeroFrequency 零频率（刚体平移）模态的处理方式
type ZeroFrequency int

const (
	// ZeroReject 出现零频率模态时返回 ErrUndefined
	ZeroReject ZeroFrequency = iota
	// ZeroStatic 零频率模态的速度系数置0，该模态只保留位移分量
	ZeroStatic
)

// String 返回处理方式名称
func (z ZeroFrequency) String() string {
	switch z {
	case ZeroReject:
		return "reject"
	case ZeroStatic:
		return "static"
	}
	return "unknown"
}

// Fitter 初始条件拟合器
type Fitter struct {
	Zero ZeroFrequency
}

// Fit 求解各模态的余弦/正弦系数
//
//	x(0)  = E · a
//	x'(0) = E · (b ∘ ω)
//
// E 的第i列为第i个模态的本征向量。E 只做一次 LU 分解，两个右端项共用。
func (f *Fitter) Fit(beads []types.Bead, modes ModeSet) (CoefficientSet, error) {
	n := len(modes)
	if n == 0 {
		return nil, fmt.Errorf("%w: no modes", ErrDimensionMismatch)
	}
	if len(beads) != n {
		return nil, fmt.Errorf("%w: %d beads, %d modes", ErrDimensionMismatch, len(beads), n)
	}

	e := mat.NewDense(n, n, nil)
	for i, m := range modes {
		if len(m.Vector) != n {
			return nil, fmt.Errorf("%w: mode %d vector length %d, want %d", ErrDimensionMismatch, i, len(m.Vector), n)
		}
		e.SetCol(i, m.Vector)
	}
	x0 := mat.NewVecDense(n, nil)
	v0 := mat.NewVecDense(n, nil)
	for j, b := range beads {
		x0.SetVec(j, b.X0)
		v0.SetVec(j, b.V0)
	}

	var lu mat.LU
	lu.Factorize(e)
	var a, bw mat.VecDense
	if err := lu.SolveVecTo(&a, false, x0); err != nil {
		return nil, singular(err)
	}
	if err := lu.SolveVecTo(&bw, false, v0); err != nil {
		return nil, singular(err)
	}

	coeffs := make(CoefficientSet, n)
	for i, m := range modes {
		coeffs[i].A = a.AtVec(i)
		if m.Frequency == 0 {
			if f.Zero == ZeroStatic {
				continue
			}
			return nil, fmt.Errorf("%w: mode %d has zero frequency", ErrUndefined, i)
		}
		coeffs[i].B = bw.AtVec(i) / m.Frequency
	}
	return coeffs, nil
}

// singular 将 LU 求解错误转换为 ErrSingularSystem
func singular(err error) error {
	var cond mat.Condition
	switch {
	case errors.Is(err, mat.ErrSingular):
		return fmt.Errorf("%w: eigenvector matrix is singular", ErrSingularSystem)
	case errors.As(err, &cond):
		return fmt.Errorf("%w: eigenvector matrix condition number %g", ErrSingularSystem, float64(cond))
	}
	return fmt.Errorf("%w: %v", ErrSingularSystem, err)
}
