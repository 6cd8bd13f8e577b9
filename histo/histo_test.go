package histo

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQHisto(Te *testing.T) {
	q := []float64{0.8, 0, 0.1, 1, 0.3, 1}
	D := NewData(QDividers(4), q)
	if d := cmp.Diff([]float64{2, 1, 0, 3}, D.View()); d != "" {
		Te.Errorf("(-want +got):\n%s", d)
	}
	if q[0] != 0.8 {
		Te.Error("raw data modified")
	}
	D.AddData(0.5, 2, -1)
	if D.Total() != 7 || D.View()[2] != 1 {
		Te.Errorf("AddData: %v", D)
	}
	D.Normalize()
	if math.Abs(D.Sum()-1) > 1e-12 {
		Te.Errorf("normalized histogram adds to %v", D.Sum())
	}
	D.UnNormalize()
	if d := cmp.Diff([]float64{2, 1, 1, 3}, D.View(), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		Te.Errorf("un-normalized (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0.125, 0.375, 0.625}, D.Centers()[:3]); d != "" {
		Te.Errorf("centers (-want +got):\n%s", d)
	}
}

func TestFreeEnergy(Te *testing.T) {
	if math.Abs(KB-0.0019872) > 1e-7 {
		Te.Errorf("kB is %v kcal/(mol K)", KB)
	}
	D := NewData(QDividers(4), []float64{0, 0.1, 0.3, 0.8, 0.9, 1})
	F, err := D.FreeEnergy(300)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{-KB * 300 * math.Log(1.0/3), -KB * 300 * math.Log(1.0/6), math.Inf(1), -KB * 300 * math.Log(0.5)}
	if d := cmp.Diff(want, F, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		Te.Errorf("(-want +got):\n%s", d)
	}
	D.Normalize()
	F2, _ := D.FreeEnergy(300)
	if d := cmp.Diff(F, F2, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		Te.Errorf("normalization changed the profile (-want +got):\n%s", d)
	}
	if _, err := D.FreeEnergy(0); err == nil {
		Te.Error("zero temperature accepted")
	}
	if _, err := NewData(QDividers(2), nil).FreeEnergy(300); err == nil {
		Te.Error("empty histogram accepted")
	}
}

func TestHistoString(Te *testing.T) {
	D := NewData(QDividers(4), []float64{0.8, 0, 0.1, 1, 0.3, 1})
	lines := strings.Split(D.String(), "\n")
	if len(lines) != 3 {
		Te.Fatalf("3 lines expected:\n%s", D)
	}
	if lines[0] != "Normalized: false, TotalData: 6" {
		Te.Errorf("wrong header %q", lines[0])
	}
	if want := "0.00-0.25 0.25-0.50 0.50-0.75 0.75-1.00"; lines[1] != want {
		Te.Errorf("bins: want %q got %q", want, lines[1])
	}
	if d := cmp.Diff([]string{"2.000", "1.000", "0.000", "3.000"}, strings.Fields(lines[2])); d != "" {
		Te.Errorf("counts (-want +got):\n%s", d)
	}
}

func TestHistoJSON(Te *testing.T) {
	D := NewData([]float64{0, 1, 2, 3, 4, 8}, []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 44, -1})
	j, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	D2 := new(Data)
	if err := json.Unmarshal(j, D2); err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff(D.View(), D2.View()); d != "" || D2.Total() != 9 {
		Te.Errorf("(-want +got):\n%s", d)
	}
	if err := json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), D2); err == nil {
		Te.Error("inconsistent histogram accepted")
	}
}
