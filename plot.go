package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ProjectPCA projects the feature vectors onto their first two
// principal components for plotting. It needs at least two vectors.
func ProjectPCA(features [][]float64) ([][2]float64, error) {
	n := len(features)
	if n < 2 {
		return nil, fmt.Errorf("too few points for PCA: %d", n)
	}
	d := len(features[0])
	if d < 2 {
		return nil, fmt.Errorf("too few feature dimensions: %d", d)
	}
	x := mat.NewDense(n, d, nil)
	means := make([]float64, d)
	for _, row := range features {
		for j, v := range row {
			means[j] += v / float64(n)
		}
	}
	for i, row := range features {
		for j, v := range row {
			x.Set(i, j, v-means[j])
		}
	}
	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, fmt.Errorf("principal components failed to converge")
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)
	var proj mat.Dense
	proj.Mul(x, vec.Slice(0, d, 0, 2))
	coords := make([][2]float64, n)
	for i := range coords {
		coords[i] = [2]float64{proj.At(i, 0), proj.At(i, 1)}
	}
	return coords, nil
}

// PlotSelection draws the projected dataset colored by cluster, rings
// the molecules carried over from a previous run, and fills the newly
// sampled ones, saving the figure as a PNG at filename.
func PlotSelection(filename string, coords [][2]float64, labels []int,
	sampled, existing []int) error {
	p := plot.New()
	p.Title.Text = "Farthest point sampling"
	p.X.Label.Text = "PC 1"
	p.Y.Label.Text = "PC 2"
	nclust := 0
	for _, l := range labels {
		if l+1 > nclust {
			nclust = l + 1
		}
	}
	for c := 0; c < nclust; c++ {
		var pts plotter.XYs
		for i, l := range labels {
			if l == c {
				pts = append(pts, plotter.XY{X: coords[i][0], Y: coords[i][1]})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(c)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d", c), s)
	}
	old := make(map[int]bool, len(existing))
	for _, i := range existing {
		old[i] = true
	}
	var prior, fresh plotter.XYs
	for _, i := range sampled {
		xy := plotter.XY{X: coords[i][0], Y: coords[i][1]}
		if old[i] {
			prior = append(prior, xy)
		} else {
			fresh = append(fresh, xy)
		}
	}
	if len(prior) > 0 {
		s, err := plotter.NewScatter(prior)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{G: 128, A: 255}
		s.GlyphStyle.Radius = vg.Points(6)
		s.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(s)
		p.Legend.Add("existing samples", s)
	}
	if len(fresh) > 0 {
		s, err := plotter.NewScatter(fresh)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add("new samples", s)
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
