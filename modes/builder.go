package modes

import (
	"beadchain/types"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Builder 质量矩阵与刚度矩阵构建器
// 连接介质（弦/弹簧）在创建时确定，后续构建不再判断类型
type Builder struct {
	medium types.Medium
}

// NewBuilder 创建矩阵构建器
func NewBuilder(medium types.Medium) (*Builder, error) {
	if medium == nil {
		return nil, fmt.Errorf("%w: medium not set", ErrInvalidInput)
	}
	if err := medium.Check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &Builder{medium: medium}, nil
}

// Kind 仿真类型
func (b *Builder) Kind() types.SimType { return b.medium.Kind() }

// Build 构建质量矩阵 M 和三对角刚度矩阵 K
//
//	M[i][i]   = m_i
//	K[i][i]   = c_i + c_{i+1}
//	K[i][i+1] = K[i+1][i] = -c_{i+1}
//
// 其中 c_k 为第k个连接的耦合刚度（弹簧: k，弦: T/L）
func (b *Builder) Build(beads []types.Bead, conns types.Connections) (*mat.DiagDense, *mat.SymBandDense, error) {
	n := len(beads)
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: no beads", ErrInvalidInput)
	}
	for i, bead := range beads {
		if err := bead.Check(); err != nil {
			return nil, nil, fmt.Errorf("%w: bead %d: %v", ErrInvalidInput, i, err)
		}
	}
	if err := conns.Check(n); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 单个珠子时带宽为0
	band := 1
	if n == 1 {
		band = 0
	}
	m := mat.NewDiagDense(n, nil)
	k := mat.NewSymBandDense(n, band, nil)
	for i := 0; i < n; i++ {
		m.SetDiag(i, beads[i].Mass)
		left := b.medium.Coupling(conns[i])
		right := b.medium.Coupling(conns[i+1])
		k.SetSymBand(i, i, left+right)
		if i+1 < n {
			k.SetSymBand(i, i+1, -right)
		}
	}
	return m, k, nil
}
