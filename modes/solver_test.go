package modes

import (
	"beadchain/types"
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// springChain 创建等质量等弹性系数的弹簧链
func springChain(n int, m, k float64) *types.Simulation {
	sim := &types.Simulation{Medium: types.Spring{}}
	for i := 0; i < n; i++ {
		sim.Beads = append(sim.Beads, types.Bead{Mass: m, X0: float64(i%3) - 1, V0: 0.5 * float64(i%2)})
	}
	for i := 0; i <= n; i++ {
		sim.Connections = append(sim.Connections, k)
	}
	return sim
}

// TestSolveTwoBead 两珠子弹簧链 m=1 k=1: ω = {1, √3}
func TestSolveTwoBead(t *testing.T) {
	sim := &types.Simulation{
		Medium:      types.Spring{},
		Beads:       []types.Bead{{Mass: 1, X0: 1}, {Mass: 1}},
		Connections: types.Connections{1, 1, 1},
	}
	res, err := Solve(sim)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	freqs := res.Modes.Frequencies()
	if !floats.EqualApprox(freqs, []float64{1, math.Sqrt(3)}, 1e-9) {
		t.Errorf("frequencies = %v, expected [1 √3]", freqs)
	}
	if res.Kind != types.TypeSpring {
		t.Errorf("Kind = %v", res.Kind)
	}
}

// TestSolveSingleBead 单珠子: ω = sqrt((k1+k2)/m)
func TestSolveSingleBead(t *testing.T) {
	sim := &types.Simulation{
		Medium:      types.Spring{},
		Beads:       []types.Bead{{Mass: 2, X0: 0.1, V0: -0.3}},
		Connections: types.Connections{3, 5},
	}
	res, err := Solve(sim)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.NumModes() != 1 {
		t.Fatalf("modes = %d, expected 1", res.NumModes())
	}
	if w := res.Modes[0].Frequency; math.Abs(w-2) > 1e-12 {
		t.Errorf("frequency = %v, expected 2", w)
	}
	if c := res.Coefficients[0]; math.Abs(c.A-0.1) > 1e-12 || math.Abs(c.B+0.15) > 1e-12 {
		t.Errorf("coefficient = %+v, expected {A:0.1 B:-0.15}", c)
	}
}

// TestSolveUniformString 均匀弦: ω_k = 2 sqrt(T/(mL)) sin(kπ/(2(n+1)))
func TestSolveUniformString(t *testing.T) {
	const (
		n       = 7
		tension = 4.0
		mass    = 0.5
		length  = 0.25
	)
	sim := &types.Simulation{Medium: types.String{Tension: tension}}
	for i := 0; i < n; i++ {
		sim.Beads = append(sim.Beads, types.Bead{Mass: mass, X0: math.Sin(float64(i))})
	}
	for i := 0; i <= n; i++ {
		sim.Connections = append(sim.Connections, length)
	}
	res, err := Solve(sim)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	w0 := 2 * math.Sqrt(tension/(mass*length))
	for k, mode := range res.Modes {
		expected := w0 * math.Sin(float64(k+1)*math.Pi/float64(2*(n+1)))
		if math.Abs(mode.Frequency-expected) > 1e-9 {
			t.Errorf("mode %d frequency = %v, expected %v", k, mode.Frequency, expected)
		}
	}
}

// TestSolveProperties 模态数量、频率单调、向量单位长度、初始条件回代
func TestSolveProperties(t *testing.T) {
	sims := []*types.Simulation{
		springChain(1, 1, 1),
		springChain(5, 2, 3),
		springChain(40, 1, 10),
		{
			Medium: types.String{Tension: 10},
			Beads: []types.Bead{
				{Mass: 1, X0: 0.1, V0: 0},
				{Mass: 3, X0: -0.2, V0: 1},
				{Mass: 0.5, X0: 0, V0: -2},
				{Mass: 2, X0: 0.3, V0: 0.5},
			},
			Connections: types.Connections{0.5, 1, 0.25, 2, 1},
		},
	}
	for si, sim := range sims {
		res, err := Solve(sim)
		if err != nil {
			t.Fatalf("sim %d: Solve failed: %v", si, err)
		}
		n := sim.NumBeads()
		if len(res.Modes) != n || len(res.Coefficients) != n {
			t.Fatalf("sim %d: %d modes, %d coefficients, expected %d", si, len(res.Modes), len(res.Coefficients), n)
		}
		for i, mode := range res.Modes {
			if i > 0 && mode.Frequency < res.Modes[i-1].Frequency {
				t.Errorf("sim %d: frequency %d decreases: %v < %v", si, i, mode.Frequency, res.Modes[i-1].Frequency)
			}
			if norm := floats.Norm(mode.Vector, 2); math.Abs(norm-1) > 1e-9 {
				t.Errorf("sim %d: mode %d norm = %v", si, i, norm)
			}
		}
		x := res.Position(0)
		v := res.Velocity(0)
		for j, b := range sim.Beads {
			if math.Abs(x[j]-b.X0) > types.FitTolerance {
				t.Errorf("sim %d: bead %d x(0) = %v, expected %v", si, j, x[j], b.X0)
			}
			if math.Abs(v[j]-b.V0) > types.FitTolerance {
				t.Errorf("sim %d: bead %d v(0) = %v, expected %v", si, j, v[j], b.V0)
			}
		}
	}
}

// TestSolveZeroMass 零质量在构建阶段失败
func TestSolveZeroMass(t *testing.T) {
	sim := springChain(3, 1, 1)
	sim.Beads[1].Mass = 0
	res, err := Solve(sim)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, expected ErrInvalidInput", err)
	}
	if res != nil {
		t.Errorf("result returned on failure")
	}
	var e *Error
	if !errors.As(err, &e) || e.Op != OpBuild {
		t.Errorf("error %v not from build stage", err)
	}
}

// TestSolveNil nil 仿真参数
func TestSolveNil(t *testing.T) {
	if _, err := Solve(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, expected ErrInvalidInput", err)
	}
}

// TestSolveDeterministic 相同输入得到相同结果
func TestSolveDeterministic(t *testing.T) {
	sim := springChain(12, 1.5, 2)
	a, err := Solve(sim)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	b, err := Solve(sim)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two solves differ")
	}
}

// TestNewSolverOptions 配置回调
func TestNewSolverOptions(t *testing.T) {
	s := NewSolver(func(s *Solver) {
		s.Zero = ZeroStatic
		s.Tolerance = 1e-6
	})
	if s.Zero != ZeroStatic || s.Tolerance != 1e-6 {
		t.Errorf("options not applied: %+v", s)
	}
	if d := NewSolver(); d.Zero != ZeroReject || d.Tolerance != types.Tolerance {
		t.Errorf("defaults = %+v", d)
	}
}
