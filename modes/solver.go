package modes

import (
	"beadchain/types"
	"fmt"
)

// Solver 简正模态求解器
// 依次执行: 构建矩阵 -> 约化 -> 提取模态 -> 拟合初始条件
// 中间矩阵只在一次 Solve 调用内存在
type Solver struct {
	Tolerance float64       // 负特征值容差
	Zero      ZeroFrequency // 零频率模态处理方式
}

// NewSolver 创建求解器，opts 用于修改默认配置
func NewSolver(opts ...func(s *Solver)) *Solver {
	s := &Solver{
		Tolerance: types.Tolerance,
		Zero:      ZeroReject,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve 求解仿真的模态和初始条件系数
func (s *Solver) Solve(sim *types.Simulation) (*Result, error) {
	if sim == nil {
		return nil, wrapOp(OpBuild, fmt.Errorf("%w: nil simulation", ErrInvalidInput))
	}
	builder, err := NewBuilder(sim.Medium)
	if err != nil {
		return nil, wrapOp(OpBuild, err)
	}
	m, k, err := builder.Build(sim.Beads, sim.Connections)
	if err != nil {
		return nil, wrapOp(OpBuild, err)
	}
	d, invSqrt, err := Reduce(m, k)
	if err != nil {
		return nil, wrapOp(OpReduce, err)
	}
	ex := &Extractor{Tolerance: s.Tolerance}
	modes, err := ex.Extract(d, invSqrt)
	if err != nil {
		return nil, wrapOp(OpExtract, err)
	}
	fit := &Fitter{Zero: s.Zero}
	coeffs, err := fit.Fit(sim.Beads, modes)
	if err != nil {
		return nil, wrapOp(OpFit, err)
	}
	return &Result{Kind: builder.Kind(), Modes: modes, Coefficients: coeffs}, nil
}

// Solve 使用默认配置求解
func Solve(sim *types.Simulation) (*Result, error) {
	return NewSolver().Solve(sim)
}
