package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot size, in inches.
const (
	plotWidth  = 8
	plotHeight = 5
)

// Plot draws the convergence curves (population best, population mean and
// best-ever cost per generation) and saves them to path. The image format
// follows the file extension (.png, .svg, .pdf, ...).
func (h *History) Plot(path, title string) error {
	if len(h.Stats) == 0 {
		return ErrEmptyHistory
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Tour cost"

	var (
		n        = len(h.Stats)
		bestPts  = make(plotter.XYs, n)
		meanPts  = make(plotter.XYs, n)
		everPts  = make(plotter.XYs, n)
		i        int
		genValue float64
	)
	for i = 0; i < n; i++ {
		genValue = float64(h.Stats[i].Generation)
		bestPts[i].X, bestPts[i].Y = genValue, h.Stats[i].BestCost
		meanPts[i].X, meanPts[i].Y = genValue, h.Stats[i].MeanCost
		everPts[i].X, everPts[i].Y = genValue, h.Stats[i].BestEverCost
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return fmt.Errorf("report: best line: %w", err)
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return fmt.Errorf("report: mean line: %w", err)
	}
	everLine, err := plotter.NewLine(everPts)
	if err != nil {
		return fmt.Errorf("report: best-ever line: %w", err)
	}
	bestLine.LineStyle.Color = plotutil.Color(0)
	meanLine.LineStyle.Color = plotutil.Color(1)
	everLine.LineStyle.Color = plotutil.Color(2)
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	everLine.LineStyle.Width = vg.Points(2)

	p.Add(plotter.NewGrid(), bestLine, meanLine, everLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Add("best ever", everLine)
	p.Legend.Top = true

	if err = p.Save(plotWidth*vg.Inch, plotHeight*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}

	return nil
}
