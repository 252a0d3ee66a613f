package composite

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gopkg.in/yaml.v3"

	"github.com/zeyus-research/isc-playground/frametable"
	"github.com/zeyus-research/isc-playground/study"
	"github.com/zeyus-research/isc-playground/timebase"
)

// ChartConfig controls chart rendering. It is passed explicitly so no
// rendering state leaks into the resampling core.
type ChartConfig struct {
	WidthInches  float64 `yaml:"width_in"`
	HeightInches float64 `yaml:"height_in"`
	DPI          int     `yaml:"dpi"`
}

// DefaultChartConfig returns the study's 12x10 inch, 150 dpi layout.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{WidthInches: 12, HeightInches: 10, DPI: 150}
}

// LoadChartConfig reads a YAML chart configuration. Fields absent from
// the file keep their default values.
func LoadChartConfig(path string) (ChartConfig, error) {
	cfg := DefaultChartConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.WidthInches <= 0 || cfg.HeightInches <= 0 || cfg.DPI <= 0 {
		return cfg, fmt.Errorf("%s: chart dimensions and dpi must be positive", path)
	}
	return cfg, nil
}

// Panel colors.
var (
	colorRMS     = color.NRGBA{B: 0xff, A: 0x99}
	colorPeak    = color.NRGBA{G: 0x80, A: 0x80}
	colorLoud    = color.NRGBA{R: 0x80, B: 0x80, A: 0xb3}
	colorLoudMA  = color.NRGBA{G: 0xc0, B: 0x93, A: 0xff}
	colorLum     = color.NRGBA{R: 0xff, G: 0xa5, A: 0x99}
	colorLumFill = color.NRGBA{R: 0xff, G: 0xa5, A: 0x4d}
	colorRMSMA   = color.NRGBA{R: 0x80, B: 0x80, A: 0xff}
	colorLumMA   = color.NRGBA{R: 0xff, A: 0xff}
)

// renderChart writes the three-panel composite chart: audio amplitude,
// perceptual loudness and video luminance, each with a trailing
// moving-average overlay.
func renderChart(path string, cfg Config, stim study.Stimulus, t *frametable.Table, window int) error {
	amp, err := amplitudePanel(cfg, stim, t, window)
	if err != nil {
		return err
	}
	loud, err := loudnessPanel(cfg, t, window)
	if err != nil {
		return err
	}
	lum, err := luminancePanel(cfg, t, window)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(cfg.Chart.WidthInches)*vg.Inch, vg.Length(cfg.Chart.HeightInches)*vg.Inch),
		vgimg.UseDPI(cfg.Chart.DPI),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 3, Cols: 1, PadY: vg.Points(12)}

	panels := [][]*plot.Plot{{amp}, {loud}, {lum}}
	canvases := plot.Align(panels, tiles, dc)
	for i := range panels {
		panels[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func amplitudePanel(cfg Config, stim study.Stimulus, t *frametable.Table, window int) (*plot.Plot, error) {
	p := newPanel(fmt.Sprintf("%s - Audio Amplitude", stim), "Amplitude (dBFS)")

	if err := addLine(p, t, "amp_rms", "RMS", colorRMS); err != nil {
		return nil, err
	}
	if err := addLine(p, t, "amp_peak", "Peak", colorPeak); err != nil {
		return nil, err
	}
	if err := addAverage(p, cfg, t, "amp_rms", "RMS", window, colorRMSMA); err != nil {
		return nil, err
	}
	return p, nil
}

func loudnessPanel(cfg Config, t *frametable.Table, window int) (*plot.Plot, error) {
	p := newPanel("Perceptual Loudness (EBU R128)", "Loudness (LUFS)")

	if err := addLine(p, t, "ebu_r128_M", "Momentary Loudness", colorLoud); err != nil {
		return nil, err
	}
	if err := addAverage(p, cfg, t, "ebu_r128_M", "Momentary Loudness", window, colorLoudMA); err != nil {
		return nil, err
	}
	return p, nil
}

func luminancePanel(cfg Config, t *frametable.Table, window int) (*plot.Plot, error) {
	p := newPanel("Video Luminance", "Luminance (0-255)")
	p.X.Label.Text = "Time (s)"

	minLum, err := t.Column("min_lum")
	if err != nil {
		return nil, err
	}
	maxLum, err := t.Column("max_lum")
	if err != nil {
		return nil, err
	}
	band, err := bandPolygon(t.Timestamps, minLum, maxLum, colorLumFill)
	if err != nil {
		return nil, err
	}
	p.Add(band)
	p.Legend.Add("Min-Max Range", band)

	if err := addLine(p, t, "mean_lum", "Mean", colorLum); err != nil {
		return nil, err
	}
	if err := addAverage(p, cfg, t, "mean_lum", "Mean", window, colorLumMA); err != nil {
		return nil, err
	}
	return p, nil
}

func newPanel(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, t *frametable.Table, column, label string, c color.Color) error {
	vals, err := t.Column(column)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(xys(t.Timestamps, vals))
	if err != nil {
		return err
	}
	l.Color = c
	p.Add(l)
	p.Legend.Add(label, l)
	return nil
}

// addAverage overlays the trailing moving average of a column as a dashed
// line.
func addAverage(p *plot.Plot, cfg Config, t *frametable.Table, column, label string, window int, c color.Color) error {
	vals, err := t.Column(column)
	if err != nil {
		return err
	}
	avg, err := timebase.MovingAverage(vals, window)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(xys(t.Timestamps, avg))
	if err != nil {
		return err
	}
	l.Color = c
	l.Width = vg.Points(1)
	l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(l)
	p.Legend.Add(fmt.Sprintf("%s %gs MA", label, cfg.WindowDuration), l)
	return nil
}

// bandPolygon fills the area between the lo and hi curves.
func bandPolygon(ts, lo, hi []float64, c color.Color) (*plotter.Polygon, error) {
	pts := make(plotter.XYs, 0, 2*len(ts))
	for i := range ts {
		pts = append(pts, plotter.XY{X: ts[i], Y: lo[i]})
	}
	for i := len(ts) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: ts[i], Y: hi[i]})
	}

	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Color = color.Transparent
	return poly, nil
}

func xys(ts, vals []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ts))
	for i := range ts {
		pts[i].X = ts[i]
		pts[i].Y = vals[i]
	}
	return pts
}
