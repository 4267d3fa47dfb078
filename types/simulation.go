package types

import "fmt"

// Simulation 一次仿真的全部物理参数
type Simulation struct {
	Medium      Medium      // 连接介质
	Beads       []Bead      // 珠子列表
	Connections Connections // 连接列表，长度 len(Beads)+1
}

// NumBeads 珠子数量
func (sim *Simulation) NumBeads() int { return len(sim.Beads) }

// Kind 仿真类型，未设置介质时为 TypeUnknown
func (sim *Simulation) Kind() SimType {
	if sim.Medium == nil {
		return TypeUnknown
	}
	return sim.Medium.Kind()
}

// Check 检查仿真参数
func (sim *Simulation) Check() error {
	if sim.Medium == nil {
		return fmt.Errorf("simulation medium not set")
	}
	if len(sim.Beads) == 0 {
		return fmt.Errorf("simulation needs at least one bead")
	}
	if err := sim.Medium.Check(); err != nil {
		return err
	}
	for i, b := range sim.Beads {
		if err := b.Check(); err != nil {
			return fmt.Errorf("bead %d: %w", i, err)
		}
	}
	return sim.Connections.Check(len(sim.Beads))
}

// Positions 珠子的静平衡位置
// 弦按连接长度累加得到位置，弹簧按等间距排列（按弦的方式绘制）
// 返回值包含两端固定点，长度为 n+2
func (sim *Simulation) Positions() []float64 {
	n := len(sim.Beads)
	pos := make([]float64, n+2)
	for i := 1; i <= n+1; i++ {
		step := 1.0
		if sim.Kind() == TypeString && i-1 < len(sim.Connections) {
			step = sim.Connections[i-1]
		}
		pos[i] = pos[i-1] + step
	}
	return pos
}
