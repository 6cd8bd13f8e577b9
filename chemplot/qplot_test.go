package chemplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestBasicPlot(Te *testing.T) {
	p := basicPlot("Q(t)", "t", "Q")
	if p.Title.Text != "Q(t)" || p.X.Label.Text != "t" || p.Y.Label.Text != "Q" {
		Te.Errorf("wrong labels %q %q %q", p.Title.Text, p.X.Label.Text, p.Y.Label.Text)
	}
	if p.Title.Padding != 3*vg.Millimeter {
		Te.Errorf("title padding should be 3 mm, got %v", p.Title.Padding)
	}
}

func TestQPlot(Te *testing.T) {
	dir := Te.TempDir()
	q := make([]float64, 200)
	for i := range q {
		q[i] = 0.5 + 0.4*math.Cos(float64(i)/20)
	}
	for _, name := range []string{"q.png", "q.svg"} {
		name = filepath.Join(dir, name)
		if err := QPlot(q, 0, "Q(t)", name); err != nil {
			Te.Fatal(err)
		}
		if info, err := os.Stat(name); err != nil || info.Size() == 0 {
			Te.Errorf("plot %s not written: %v", name, err)
		}
	}
	if err := QPlot(nil, 1, "", filepath.Join(dir, "empty.png")); err == nil {
		Te.Error("empty data accepted")
	}
}

func TestFreeEnergyPlot(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "f.png")
	err := FreeEnergyPlot([]float64{0.125, 0.375, 0.625, 0.875}, []float64{0.6, 1.1, math.Inf(1), 0.4}, "F(Q)", name)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
	if err := FreeEnergyPlot([]float64{0.5}, []float64{math.Inf(1)}, "", name); err == nil {
		Te.Error("no finite values accepted")
	}
	if err := FreeEnergyPlot([]float64{0.5}, nil, "", name); err == nil {
		Te.Error("mismatched slices accepted")
	}
}
