package beadchain

import (
	"beadchain/load"
	"beadchain/modes"
	"beadchain/modes/debug"
	"beadchain/types"
	"fmt"
)

// Chain 珠子链模态仿真
type Chain struct {
	*types.Simulation
	Result *modes.Result // 最近一次求解结果
}

// NewChain 初始化
func NewChain(sim *types.Simulation) *Chain {
	return &Chain{Simulation: sim}
}

// Load 加载参数文件
func (c *Chain) Load(filename string) error {
	sim, err := load.LoadFile(filename)
	if err != nil {
		return err
	}
	c.Simulation = sim
	c.Result = nil
	return nil
}

// Export 导出参数文件
func (c *Chain) Export(filename string) error {
	return load.ExportFile(filename, c.Simulation)
}

// Solve 求解模态和初始条件系数，opts 用于修改求解器配置
func (c *Chain) Solve(opts ...func(s *modes.Solver)) (*modes.Result, error) {
	if c.Simulation == nil {
		return nil, fmt.Errorf("chain: no simulation loaded")
	}
	res, err := modes.NewSolver(opts...).Solve(c.Simulation)
	if err != nil {
		return nil, err
	}
	c.Result = res
	return res, nil
}

// Animate 按动画配置采样解析解并交给调试记录
func (c *Chain) Animate(dbg types.Debug, cfg debug.AnimateConfig) error {
	if dbg == nil {
		return fmt.Errorf("chain: no debug recorder")
	}
	if c.Simulation == nil {
		return fmt.Errorf("chain: no simulation loaded")
	}
	if err := c.Simulation.Check(); err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	if c.Result == nil {
		return fmt.Errorf("chain: not solved")
	}
	if err := cfg.Check(); err != nil {
		return err
	}
	dbg.Init(c.Simulation)
	if rec, ok := dbg.(interface{ SetResult(*modes.Result) }); ok {
		rec.SetResult(c.Result)
	}
	for _, t := range cfg.Times() {
		dbg.Update(t, c.Result.Position(t))
	}
	return nil
}

// Plot 创建绘图器
func (c *Chain) Plot(cfg debug.PlotConfig) (*debug.Plot, error) {
	if c.Result == nil {
		return nil, fmt.Errorf("chain: not solved")
	}
	return debug.NewPlot(c.Simulation, c.Result, cfg), nil
}
