package modes

import (
	"beadchain/types"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mode 单个简正模态
type Mode struct {
	Frequency float64   // 角频率（rad/s）
	Vector    []float64 // 物理坐标下的单位本征向量，第j个分量对应第j个珠子
}

// ModeSet 按频率升序排列的模态列表
type ModeSet []Mode

// Frequencies 频率列表
func (ms ModeSet) Frequencies() []float64 {
	freqs := make([]float64, len(ms))
	for i, m := range ms {
		freqs[i] = m.Frequency
	}
	return freqs
}

// Matrix 本征向量矩阵，第i列为第i个模态
func (ms ModeSet) Matrix() *mat.Dense {
	n := len(ms)
	if n == 0 {
		return nil
	}
	e := mat.NewDense(len(ms[0].Vector), n, nil)
	for i, m := range ms {
		e.SetCol(i, m.Vector)
	}
	return e
}

// Coefficient 模态时间演化系数 a·cos(ωt) + b·sin(ωt)
type Coefficient struct {
	A float64 // 余弦项系数
	B float64 // 正弦项系数
}

// Amplitude 模态振幅
func (c Coefficient) Amplitude() float64 { return math.Hypot(c.A, c.B) }

// CoefficientSet 与 ModeSet 一一对应的系数列表
type CoefficientSet []Coefficient

// Result 求解结果
type Result struct {
	Kind         types.SimType  // 仿真类型
	Modes        ModeSet        // 模态
	Coefficients CoefficientSet // 初始条件系数
}

// NumModes 模态数量
func (r *Result) NumModes() int { return len(r.Modes) }

// Position t 时刻各珠子位移
//
//	x_j(t) = Σ_i E[j][i] · (a_i cos(ω_i t) + b_i sin(ω_i t))
func (r *Result) Position(t float64) []float64 {
	x := make([]float64, len(r.Modes))
	for i, m := range r.Modes {
		c := r.Coefficients[i]
		s, co := math.Sincos(m.Frequency * t)
		q := c.A*co + c.B*s
		for j, v := range m.Vector {
			x[j] += v * q
		}
	}
	return x
}

// Velocity t 时刻各珠子速度
//
//	x'_j(t) = Σ_i E[j][i] · ω_i (b_i cos(ω_i t) - a_i sin(ω_i t))
func (r *Result) Velocity(t float64) []float64 {
	v := make([]float64, len(r.Modes))
	for i, m := range r.Modes {
		c := r.Coefficients[i]
		s, co := math.Sincos(m.Frequency * t)
		q := m.Frequency * (c.B*co - c.A*s)
		for j, e := range m.Vector {
			v[j] += e * q
		}
	}
	return v
}

// Amplitudes 各模态振幅
func (r *Result) Amplitudes() []float64 {
	amp := make([]float64, len(r.Coefficients))
	for i, c := range r.Coefficients {
		amp[i] = c.Amplitude()
	}
	return amp
}

// Print 输出频率、本征向量和系数
func (r *Result) Print(w io.Writer) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, "Eigenfrequencies: ")
	for _, m := range r.Modes {
		fmt.Fprintf(writer, "%.2f\t", m.Frequency)
	}
	fmt.Fprintf(writer, "\nEigenvectors:\n")
	for i, m := range r.Modes {
		fmt.Fprintf(writer, "Mode #%d:\n", i+1)
		for _, v := range m.Vector {
			fmt.Fprintf(writer, "%.2f\t", v)
		}
		writer.WriteRune('\n')
	}
	fmt.Fprintf(writer, "Coefficients:\n")
	for i, c := range r.Coefficients {
		fmt.Fprintf(writer, "Mode #%d:\ta=%.2f\tb=%.2f\n", i+1, c.A, c.B)
	}
	return writer.Flush()
}

// String 格式化输出
func (r *Result) String() string {
	var buf bytes.Buffer
	r.Print(&buf)
	return buf.String()
}
