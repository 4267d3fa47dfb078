package modes

import (
	"beadchain/types"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Extractor 模态提取器
type Extractor struct {
	// Tolerance 负特征值容差（相对 max(1, max|λ|)）
	// 在容差内的负特征值视为数值噪声，频率取0；超出则为非物理结果
	Tolerance float64
}

// NewExtractor 使用默认容差创建模态提取器
func NewExtractor() *Extractor {
	return &Extractor{Tolerance: types.Tolerance}
}

// Extract 从动力学矩阵 D 提取模态
//
// 算法步骤:
//  1. 对称本征分解 D = V Λ Vᵀ
//  2. 按 |λ| 升序稳定排序
//  3. ω = sqrt(λ)，λ 超出容差为负时返回 ErrNumerical
//  4. 回变换到物理坐标: x[j] = invSqrt[j][j] · v[j]（按珠子行缩放）
//  5. 归一化为单位长度
func (ex *Extractor) Extract(d mat.Symmetric, invSqrt mat.Diagonal) (ModeSet, error) {
	if d == nil || invSqrt == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrDimensionMismatch)
	}
	n, c := d.Dims()
	if n != c {
		return nil, fmt.Errorf("%w: dynamical matrix %dx%d is not square", ErrDimensionMismatch, n, c)
	}
	if r, _ := invSqrt.Dims(); r != n {
		return nil, fmt.Errorf("%w: dynamical matrix order %d, mass factor order %d", ErrDimensionMismatch, n, r)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty dynamical matrix", ErrDimensionMismatch)
	}

	var es mat.EigenSym
	if ok := es.Factorize(d, true); !ok {
		return nil, fmt.Errorf("%w: symmetric eigendecomposition failed", ErrNumerical)
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	// 按绝对值排序，保留分解器原有的相对顺序
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(values[order[a]]) < math.Abs(values[order[b]])
	})

	maxAbs := 0.0
	for _, v := range values {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	tol := ex.Tolerance * math.Max(1, maxAbs)

	modes := make(ModeSet, n)
	for i, col := range order {
		lambda := values[col]
		if math.IsNaN(lambda) || lambda < -tol {
			return nil, fmt.Errorf("%w: mode %d eigenvalue %g is negative", ErrNumerical, i, lambda)
		}
		freq := 0.0
		if lambda > 0 {
			freq = math.Sqrt(lambda)
		}

		vec := make([]float64, n)
		for j := 0; j < n; j++ {
			vec[j] = invSqrt.At(j, j) * vectors.At(j, col)
		}
		norm := floats.Norm(vec, 2)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, fmt.Errorf("%w: mode %d eigenvector cannot be normalized", ErrNumerical, i)
		}
		floats.Scale(1/norm, vec)
		orient(vec)

		modes[i] = Mode{Frequency: freq, Vector: vec}
	}
	return modes, nil
}

// orient 固定本征向量符号：第一个非零分量为正
func orient(vec []float64) {
	for _, v := range vec {
		if math.Abs(v) < types.Tolerance {
			continue
		}
		if v < 0 {
			floats.Scale(-1, vec)
		}
		return
	}
}
