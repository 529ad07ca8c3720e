package experiment

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders a grouped bar chart of mean nodes per instance, one
// bar per engine, to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func WritePlot(path string, records []Record) error {
	engines, instances, means := aggregate(records)
	if len(instances) == 0 {
		return fmt.Errorf("plot: no records")
	}

	p := plot.New()
	p.Title.Text = "Search effort by engine"
	p.Y.Label.Text = "mean nodes"

	width := vg.Points(12)
	offset := -width * vg.Length(len(engines)-1) / 2
	for i, engine := range engines {
		values := make(plotter.Values, len(instances))
		for j, inst := range instances {
			values[j] = means[engine][inst]
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = offset + width*vg.Length(i)
		p.Add(bars)
		p.Legend.Add(engine, bars)
	}
	p.Legend.Top = true
	p.NominalX(instances...)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}

// aggregate averages Nodes over rounds, keyed by engine and instance.
// Instances keep their record order; engines are sorted by name.
func aggregate(records []Record) ([]string, []string, map[string]map[string]float64) {
	sums := make(map[string]map[string]float64)
	counts := make(map[string]map[string]int)
	var engines, instances []string
	seen := make(map[string]bool)

	for _, rec := range records {
		if sums[rec.Engine] == nil {
			sums[rec.Engine] = make(map[string]float64)
			counts[rec.Engine] = make(map[string]int)
			engines = append(engines, rec.Engine)
		}
		if !seen[rec.Instance] {
			seen[rec.Instance] = true
			instances = append(instances, rec.Instance)
		}
		sums[rec.Engine][rec.Instance] += float64(rec.Nodes)
		counts[rec.Engine][rec.Instance]++
	}

	means := make(map[string]map[string]float64, len(engines))
	for engine, byInstance := range sums {
		means[engine] = make(map[string]float64, len(byInstance))
		for inst, sum := range byInstance {
			means[engine][inst] = sum / float64(counts[engine][inst])
		}
	}
	sort.Strings(engines)
	return engines, instances, means
}
