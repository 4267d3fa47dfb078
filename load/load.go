package load

import (
	"beadchain/types"
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadString 加载仿真参数
func LoadString(s string) (*types.Simulation, error) {
	return LoadReader(strings.NewReader(s))
}

// LoadFile 从文件加载仿真参数
func LoadFile(filename string) (*types.Simulation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	sim, err := LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sim, nil
}

// LoadReader 加载仿真参数
//
// 格式（空白分隔，# 或 // 之后为注释）:
//
//	string|spring           仿真类型（不区分大小写）
//	T                       弦张力（仅 string）
//	n                       珠子数量
//	c_i  m_i  x0_i  v0_i    重复 n 次: 左侧连接值、质量、初始位移、初始速度
//	c_n                     最右侧连接值
func LoadReader(r io.Reader) (*types.Simulation, error) {
	ts, err := scanTokens(r)
	if err != nil {
		return nil, err
	}

	kind, err := ts.next("simulation type")
	if err != nil {
		return nil, err
	}
	sim := &types.Simulation{}
	switch strings.ToLower(kind.Text) {
	case "string":
		tension, err := ts.float("tension")
		if err != nil {
			return nil, err
		}
		sim.Medium = types.String{Tension: tension}
	case "spring":
		sim.Medium = types.Spring{}
	default:
		return nil, fmt.Errorf("line %d: simulation type must be either string or spring, got %q", kind.Line, kind.Text)
	}

	n, err := ts.integer("bead count")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("bead count must be positive, got %d", n)
	}
	// 每个珠子4个数，另加最右侧连接值
	if left := ts.remaining(); n > (left-1)/4 {
		return nil, fmt.Errorf("bead count %d needs %d more values, file has %d", n, 4*n+1, left)
	}

	sim.Beads = make([]types.Bead, n)
	sim.Connections = make(types.Connections, n+1)
	for i := 0; i < n; i++ {
		if sim.Connections[i], err = ts.float(fmt.Sprintf("connection %d", i)); err != nil {
			return nil, err
		}
		bead := &sim.Beads[i]
		if bead.Mass, err = ts.float(fmt.Sprintf("bead %d mass", i)); err != nil {
			return nil, err
		}
		if bead.X0, err = ts.float(fmt.Sprintf("bead %d x0", i)); err != nil {
			return nil, err
		}
		if bead.V0, err = ts.float(fmt.Sprintf("bead %d v0", i)); err != nil {
			return nil, err
		}
	}
	// 连接比珠子多一个
	if sim.Connections[n], err = ts.float(fmt.Sprintf("connection %d", n)); err != nil {
		return nil, err
	}
	if rest := ts.rest(); len(rest) > 0 {
		return nil, fmt.Errorf("line %d: unexpected %q after last connection", rest[0].Line, rest[0].Text)
	}
	return sim, nil
}

// Export 导出仿真参数，格式与 LoadReader 一致
func Export(w io.Writer, sim *types.Simulation) error {
	if sim == nil || sim.Medium == nil {
		return fmt.Errorf("simulation medium not set")
	}
	if len(sim.Connections) != len(sim.Beads)+1 {
		return fmt.Errorf("need %d connections for %d beads, got %d", len(sim.Beads)+1, len(sim.Beads), len(sim.Connections))
	}
	writer := bufio.NewWriter(w)
	writer.WriteString(sim.Kind().String())
	writer.WriteRune('\n')
	if s, ok := sim.Medium.(types.String); ok {
		writer.WriteString(formatFloat(s.Tension))
		writer.WriteRune('\n')
	}
	fmt.Fprintln(writer, len(sim.Beads))
	for i, b := range sim.Beads {
		fmt.Fprintln(writer, formatFloat(sim.Connections[i]), formatFloat(b.Mass), formatFloat(b.X0), formatFloat(b.V0))
	}
	writer.WriteString(formatFloat(sim.Connections[len(sim.Beads)]))
	writer.WriteRune('\n')
	return writer.Flush()
}

// ExportFile 导出仿真参数到文件
func ExportFile(filename string, sim *types.Simulation) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Export(file, sim); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
