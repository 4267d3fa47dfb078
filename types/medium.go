package types

import (
	"fmt"
	"math"
)

// Medium 珠子之间的连接介质
// 只有两种实现: String 和 Spring，刚度矩阵构建时一次性确定
type Medium interface {
	Kind() SimType                 // 仿真类型
	Check() error                  // 检查介质参数
	Coupling(conn float64) float64 // 单个连接的近邻耦合刚度
	medium()
}

// String 张力为 Tension 的弦，连接值为段长
type String struct {
	Tension float64
}

// Kind 仿真类型
func (String) Kind() SimType { return TypeString }

// Check 张力必须为正
func (s String) Check() error {
	if math.IsNaN(s.Tension) || math.IsInf(s.Tension, 0) || s.Tension <= 0 {
		return fmt.Errorf("string tension must be positive and finite, got %v", s.Tension)
	}
	return nil
}

// Coupling 弦段刚度 T/L
func (s String) Coupling(length float64) float64 { return s.Tension / length }

func (String) medium() {}

// Spring 理想弹簧，连接值为弹性系数
type Spring struct{}

// Kind 仿真类型
func (Spring) Kind() SimType { return TypeSpring }

// Check 弹簧无额外参数
func (Spring) Check() error { return nil }

// Coupling 弹簧刚度即弹性系数
func (Spring) Coupling(k float64) float64 { return k }

func (Spring) medium() {}
