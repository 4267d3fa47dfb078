package types

import (
	"fmt"
	"math"
)

// Bead 珠子（质点）
type Bead struct {
	Mass float64 // 质量，必须大于0
	X0   float64 // 初始位移
	V0   float64 // 初始速度
}

// Check 检查珠子参数
func (b Bead) Check() error {
	if math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) || b.Mass <= 0 {
		return fmt.Errorf("mass must be positive and finite, got %v", b.Mass)
	}
	if math.IsNaN(b.X0) || math.IsInf(b.X0, 0) {
		return fmt.Errorf("initial displacement must be finite, got %v", b.X0)
	}
	if math.IsNaN(b.V0) || math.IsInf(b.V0, 0) {
		return fmt.Errorf("initial velocity must be finite, got %v", b.V0)
	}
	return nil
}

// Connections 珠子之间的连接值列表
// 弦: 各段长度; 弹簧: 各段弹性系数
// 第i个连接位于第i个珠子左侧，最后一个连接位于最后一个珠子右侧，共 n+1 个
type Connections []float64

// Check 检查连接数量及取值
func (c Connections) Check(beads int) error {
	if len(c) != beads+1 {
		return fmt.Errorf("need %d connections for %d beads, got %d", beads+1, beads, len(c))
	}
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("connection %d must be positive and finite, got %v", i, v)
		}
	}
	return nil
}
