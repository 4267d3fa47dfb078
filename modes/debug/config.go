package debug

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// AnimateConfig 动画采样配置
// 第k帧对应的仿真时间为 k/FPS*TimeScale
type AnimateConfig struct {
	FPS       float64 // 每秒帧数
	Duration  float64 // 播放时长（秒）
	TimeScale float64 // 播放速度倍率，1 为实时
}

// DefaultAnimateConfig 默认动画配置
func DefaultAnimateConfig() AnimateConfig {
	return AnimateConfig{FPS: 30, Duration: 5, TimeScale: 1}
}

// Check 检查配置
func (cfg AnimateConfig) Check() error {
	if !(cfg.FPS > 0) {
		return fmt.Errorf("animation fps must be positive, got %v", cfg.FPS)
	}
	if !(cfg.Duration >= 0) {
		return fmt.Errorf("animation duration must not be negative, got %v", cfg.Duration)
	}
	if !(cfg.TimeScale > 0) {
		return fmt.Errorf("animation time scale must be positive, got %v", cfg.TimeScale)
	}
	return nil
}

// Frames 帧数
func (cfg AnimateConfig) Frames() int {
	return int(cfg.Duration*cfg.FPS) + 1
}

// Times 各帧对应的仿真时间
func (cfg AnimateConfig) Times() []float64 {
	n := cfg.Frames()
	times := make([]float64, n)
	for k := range times {
		times[k] = float64(k) / cfg.FPS * cfg.TimeScale
	}
	return times
}

// PlotConfig 图像输出配置
type PlotConfig struct {
	Width  vg.Length // 图像宽度
	Height vg.Length // 图像高度
	Format string    // 图像格式: png, svg, pdf ...
}

// DefaultPlotConfig 默认图像配置
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{Width: 6 * vg.Inch, Height: 4 * vg.Inch, Format: "png"}
}
