package modes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Reduce 将 M x'' = -K x 化为对称本征问题
//
//	D = M^-1/2 · K · M^-1/2
//
// 质量矩阵只取对角线。K 对称时 D 对称，这里直接取 D 的上三角构造对称矩阵。
// 返回 D 以及 M^-1/2（供本征向量回变换使用）。
func Reduce(m, k mat.Matrix) (*mat.SymDense, *mat.DiagDense, error) {
	if m == nil || k == nil {
		return nil, nil, fmt.Errorf("%w: nil matrix", ErrDimensionMismatch)
	}
	mr, mc := m.Dims()
	kr, kc := k.Dims()
	if mr != mc || kr != kc {
		return nil, nil, fmt.Errorf("%w: mass %dx%d and stiffness %dx%d must be square", ErrDimensionMismatch, mr, mc, kr, kc)
	}
	if mr != kr {
		return nil, nil, fmt.Errorf("%w: mass order %d, stiffness order %d", ErrDimensionMismatch, mr, kr)
	}
	n := mr

	invSqrt := mat.NewDiagDense(n, nil)
	for i := 0; i < n; i++ {
		mi := m.At(i, i)
		if !(mi > 0) || math.IsInf(mi, 0) {
			return nil, nil, fmt.Errorf("%w: mass %d is %v", ErrInvalidInput, i, mi)
		}
		invSqrt.SetDiag(i, 1/math.Sqrt(mi))
	}

	var tmp, d mat.Dense
	tmp.Mul(invSqrt, k)
	d.Mul(&tmp, invSqrt)

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, d.At(i, j))
		}
	}
	return sym, invSqrt, nil
}
