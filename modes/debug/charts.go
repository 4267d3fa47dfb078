package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// legendOpts 图例放在右侧，可滚动
func legendOpts() charts.GlobalOpts {
	return charts.WithLegendOpts(opts.Legend{
		Type:   "scroll",
		Orient: "vertical",
		Right:  "10",
		Top:    "20",
		Bottom: "20",
	})
}

func themeOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeWesteros,
	})
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	if len(c.Beads) == 0 {
		return fmt.Errorf("charts: record not initialized")
	}
	modeNames := make([]string, len(c.Frequencies))
	for i := range modeNames {
		modeNames[i] = strconv.Itoa(i + 1)
	}

	// 模态频率
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		themeOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Eigenfrequencies",
			Subtitle: fmt.Sprintf("%s, %d beads", c.Kind, len(c.Beads)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "mode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ω (rad/s)", Scale: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	freqData := make([]opts.ScatterData, len(c.Frequencies))
	for i, f := range c.Frequencies {
		freqData[i] = opts.ScatterData{Value: f, SymbolSize: 10}
	}
	scatter.SetXAxis(modeNames).AddSeries("ω", freqData)

	// 模态振幅
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		themeOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Mode amplitudes",
			Subtitle: "sqrt(a² + b²) per normal mode",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "mode"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	ampData := make([]opts.BarData, len(c.Amplitudes))
	for i, a := range c.Amplitudes {
		ampData[i] = opts.BarData{Value: a}
	}
	bar.SetXAxis(modeNames).AddSeries("amplitude", ampData)

	// 模态形状，两端固定为0
	shapes := charts.NewLine()
	shapes.SetGlobalOptions(
		themeOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Normal modes",
			Subtitle: "unit eigenvectors along the chain",
		}),
		legendOpts(),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	shapes.SetXAxis(formatAxis(c.Positions))
	for i, shape := range c.Shapes {
		data := make([]opts.LineData, len(shape)+2)
		data[0] = opts.LineData{Value: 0}
		for j, v := range shape {
			data[j+1] = opts.LineData{Value: v}
		}
		data[len(data)-1] = opts.LineData{Value: 0}
		shapes.AddSeries(fmt.Sprintf("Mode(%d)", i+1), data)
	}

	page := components.NewPage()
	page.AddCharts(scatter, bar, shapes)

	// 位移随时间变化
	if len(c.Time) > 0 {
		lineX := charts.NewLine()
		lineX.SetGlobalOptions(
			themeOpts(),
			charts.WithTitleOpts(opts.Title{
				Title:    "Displacement",
				Subtitle: "bead displacement over time",
			}),
			legendOpts(),
			charts.WithXAxisOpts(opts.XAxis{Name: "t", SplitNumber: 20}),
			charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
			charts.WithDataZoomOpts(opts.DataZoom{
				Type:       "inside",
				Start:      0,
				End:        100,
				XAxisIndex: []int{0},
			}),
		)
		lineX.SetXAxis(formatAxis(c.Time))
		for j, name := range c.Beads {
			data := make([]opts.LineData, len(c.Time))
			for k := range c.Time {
				data[k] = opts.LineData{Value: c.Displacement[k][j]}
			}
			lineX.AddSeries(name, data)
		}
		page.AddCharts(lineX)
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }

// formatAxis 坐标轴标签
func formatAxis(values []float64) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = strconv.FormatFloat(v, 'g', 4, 64)
	}
	return labels
}
