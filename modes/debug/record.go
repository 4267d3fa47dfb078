package debug

import (
	"beadchain/modes"
	"beadchain/types"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
)

// Record 记录求解结果与位移历史
type Record struct {
	Kind         string      // 仿真类型
	Beads        []string    // 珠子列表
	Positions    []float64   // 静平衡位置（含两端固定点）
	Frequencies  []float64   // 模态频率
	Amplitudes   []float64   // 模态振幅
	Shapes       [][]float64 // 模态形状 [模态][珠子]
	Time         []float64   // 时间列
	Displacement [][]float64 // 位移列 [帧][珠子]
}

// Init 初始化，sim 为空时只清空记录
func (list *Record) Init(sim *types.Simulation) {
	list.Time = list.Time[:0]
	list.Displacement = list.Displacement[:0]
	if sim == nil {
		list.Kind = types.TypeUnknown.String()
		list.Beads, list.Positions = nil, nil
		return
	}
	list.Kind = sim.Kind().String()
	list.Beads = make([]string, sim.NumBeads())
	for i := range list.Beads {
		list.Beads[i] = fmt.Sprintf("Bead(%d)", i+1)
	}
	list.Positions = sim.Positions()
}

// SetResult 记录模态信息
func (list *Record) SetResult(res *modes.Result) {
	list.Frequencies = res.Modes.Frequencies()
	list.Amplitudes = res.Amplitudes()
	list.Shapes = make([][]float64, len(res.Modes))
	for i, m := range res.Modes {
		list.Shapes[i] = append([]float64{}, m.Vector...)
	}
}

// Update 记录数据
func (list *Record) Update(t float64, x []float64) {
	list.Time = append(list.Time, t)
	list.Displacement = append(list.Displacement, append([]float64{}, x...))
}

// Sample 按动画配置采样解析解
func (list *Record) Sample(res *modes.Result, cfg AnimateConfig) error {
	if err := cfg.Check(); err != nil {
		return err
	}
	for _, t := range cfg.Times() {
		list.Update(t, res.Position(t))
	}
	return nil
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

// WriteCSV 输出位移历史: time, Bead(1), Bead(2) ...
func (list *Record) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"time"}, list.Beads...)); err != nil {
		return err
	}
	row := make([]string, len(list.Beads)+1)
	for i, t := range list.Time {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, x := range list.Displacement[i] {
			row[j+1] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (list *Record) Error(err error) { log.Println(err) }
