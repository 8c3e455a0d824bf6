package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var csvHeader = []string{
	"n", "seeds", "mean_height", "max_height", "height_over_log2n",
	"erased", "mean_height_erased", "max_height_erased",
}

// writeCSV writes one row per size after a header row.
func writeCSV(w io.Writer, results []sizeStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, st := range results {
		row := []string{
			strconv.Itoa(st.N),
			strconv.Itoa(st.Seeds),
			strconv.FormatFloat(st.MeanHeight, 'f', 3, 64),
			strconv.Itoa(st.MaxHeight),
			strconv.FormatFloat(st.Ratio(), 'f', 3, 64),
			strconv.Itoa(st.Erased),
			strconv.FormatFloat(st.MeanErasedHeight, 'f', 3, 64),
			strconv.Itoa(st.MaxErasedHeight),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVFile(path string, results []sizeStats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCSV(f, results); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// heightPlot charts mean height against n on a log axis, with 2 ln n for
// reference.
func heightPlot(results []sizeStats) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Treap height"
	p.X.Label.Text = "n"
	p.Y.Label.Text = "height"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	loaded := make(plotter.XYs, 0, len(results))
	erased := make(plotter.XYs, 0, len(results))
	for _, st := range results {
		loaded = append(loaded, plotter.XY{X: float64(st.N), Y: st.MeanHeight})
		erased = append(erased, plotter.XY{X: float64(st.N), Y: st.MeanErasedHeight})
	}
	if err := plotutil.AddLinePoints(p,
		"mean height", loaded,
		"mean height after erase", erased,
	); err != nil {
		return nil, err
	}

	ref := plotter.NewFunction(func(x float64) float64 { return 2 * math.Log(x) })
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	ref.Width = vg.Points(1)
	p.Add(ref)
	p.Legend.Add("2 ln n", ref)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

func writePlotFile(path string, results []sizeStats) error {
	p, err := heightPlot(results)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
