package types

import "io"

// Debug 调试记录接口
type Debug interface {
	Init(sim *Simulation)          // 初始化
	Update(t float64, x []float64) // 记录一帧位移
	Render(w io.Writer) error      // 格式和输出内容
	Error(err error)               // 错误输出
}
