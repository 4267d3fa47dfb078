package debug

import (
	"beadchain/modes"
	"beadchain/types"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot 使用 gonum/plot 绘制求解结果
// 弹簧链按弦的方式绘制（珠子等间距）
type Plot struct {
	PlotConfig
	sim       *types.Simulation
	res       *modes.Result
	positions []float64
}

// NewPlot 创建绘图器
func NewPlot(sim *types.Simulation, res *modes.Result, cfg PlotConfig) *Plot {
	return &Plot{
		PlotConfig: cfg,
		sim:        sim,
		res:        res,
		positions:  sim.Positions(),
	}
}

// Frequencies 频率与模态序号散点图
func (p *Plot) Frequencies() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Eigenfrequencies"
	pl.X.Label.Text = "mode"
	pl.Y.Label.Text = "ω (rad/s)"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, p.res.NumModes())
	for i, m := range p.res.Modes {
		pts[i].X = float64(i + 1)
		pts[i].Y = m.Frequency
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Color = plotutil.Color(0)
	pl.Add(s)
	return pl, nil
}

// Amplitudes 模态振幅柱状图
func (p *Plot) Amplitudes() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Mode amplitudes"
	pl.X.Label.Text = "mode"
	pl.Y.Label.Text = "amplitude"

	values := plotter.Values(p.res.Amplitudes())
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(1)
	bars.LineStyle.Width = vg.Length(0)
	pl.Add(bars)

	names := make([]string, len(values))
	for i := range names {
		names[i] = fmt.Sprint(i + 1)
	}
	pl.NominalX(names...)
	return pl, nil
}

// NormalMode 第i个模态的形状
func (p *Plot) NormalMode(i int) (*plot.Plot, error) {
	if i < 0 || i >= p.res.NumModes() {
		return nil, fmt.Errorf("mode %d out of range [1, %d]", i+1, p.res.NumModes())
	}
	m := p.res.Modes[i]
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Mode #%d, ω = %.4g rad/s", i+1, m.Frequency)
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "displacement"
	pl.Y.Min, pl.Y.Max = -1, 1
	pl.Add(plotter.NewGrid())
	if err := p.addChain(pl, m.Vector, 0); err != nil {
		return nil, err
	}
	return pl, nil
}

// NormalModes 所有模态形状
func (p *Plot) NormalModes() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Normal modes"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "displacement"
	pl.Add(plotter.NewGrid())
	for i, m := range p.res.Modes {
		l, err := plotter.NewLine(p.chain(m.Vector))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Dashes = plotutil.Dashes(i)
		pl.Add(l)
		pl.Legend.Add(fmt.Sprintf("Mode #%d", i+1), l)
	}
	pl.Legend.Top = true
	return pl, nil
}

// Frame t 时刻链的形状，纵轴范围固定为位移上界
func (p *Plot) Frame(t float64) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("t = %.3f s", t)
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "displacement"
	bound := p.bound()
	pl.Y.Min, pl.Y.Max = -bound, bound
	if err := p.addChain(pl, p.res.Position(t), 0); err != nil {
		return nil, err
	}
	return pl, nil
}

// Encode 按配置格式输出图像
func (p *Plot) Encode(w io.Writer, pl *plot.Plot) error {
	wt, err := pl.WriterTo(p.Width, p.Height, p.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save 输出频率图、振幅图和各模态形状图到目录
func (p *Plot) Save(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var files []string
	save := func(name string, build func() (*plot.Plot, error)) error {
		pl, err := build()
		if err != nil {
			return err
		}
		file := filepath.Join(dir, name+"."+p.Format)
		if err := pl.Save(p.Width, p.Height, file); err != nil {
			return err
		}
		files = append(files, file)
		return nil
	}
	if err := save("eigenfrequencies", p.Frequencies); err != nil {
		return files, err
	}
	if err := save("amplitudes", p.Amplitudes); err != nil {
		return files, err
	}
	if err := save("modes", p.NormalModes); err != nil {
		return files, err
	}
	for i := range p.res.Modes {
		if err := save(fmt.Sprintf("mode_%02d", i+1), func() (*plot.Plot, error) { return p.NormalMode(i) }); err != nil {
			return files, err
		}
	}
	return files, nil
}

// Animate 按动画配置输出逐帧图像 frame_0000.png ...
func (p *Plot) Animate(dir string, cfg AnimateConfig) ([]string, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	times := cfg.Times()
	files := make([]string, 0, len(times))
	for k, t := range times {
		pl, err := p.Frame(t)
		if err != nil {
			return files, err
		}
		file := filepath.Join(dir, fmt.Sprintf("frame_%04d.%s", k, p.Format))
		if err := pl.Save(p.Width, p.Height, file); err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}

// chain 两端固定点加珠子位移的折线
func (p *Plot) chain(x []float64) plotter.XYs {
	pts := make(plotter.XYs, len(p.positions))
	for i, pos := range p.positions {
		pts[i].X = pos
		if i > 0 && i <= len(x) {
			pts[i].Y = x[i-1]
		}
	}
	return pts
}

// addChain 绘制弦和珠子
func (p *Plot) addChain(pl *plot.Plot, x []float64, color int) error {
	pts := p.chain(x)
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = plotutil.Color(color)
	beads, err := plotter.NewScatter(pts[1 : len(pts)-1])
	if err != nil {
		return err
	}
	beads.GlyphStyle.Shape = draw.CircleGlyph{}
	beads.GlyphStyle.Radius = vg.Points(4)
	beads.GlyphStyle.Color = plotutil.Color(color)
	pl.Add(l, beads)
	return nil
}

// bound 位移上界 Σ|E_ji|·amp_i 的最大值
func (p *Plot) bound() float64 {
	amp := p.res.Amplitudes()
	bound := 0.0
	for j := 0; j < p.res.NumModes(); j++ {
		sum := 0.0
		for i, m := range p.res.Modes {
			sum += math.Abs(m.Vector[j]) * amp[i]
		}
		bound = math.Max(bound, sum)
	}
	if bound == 0 {
		return 1
	}
	return bound * 1.05
}
