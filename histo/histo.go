//Package histo builds histograms of Q values and the free energy profiles
//obtained from them.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	chm "github.com/joshuasmock/charmminglib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Units
const (
	Boltzmann = 1.3806503e-23 //J/K
	Avogadro  = 6.0221415e23
	Joule2Cal = 0.239005736
	KB        = Boltzmann * Avogadro * Joule2Cal / 1000 //kcal/(mol K)
)

//Data is a histogram.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//QDividers returns the dividers for a histogram of n bins
//that covers the whole [0,1] range, 1 included.
func QDividers(n int) []float64 {
	if n < 1 {
		panic(fmt.Sprintf("histo.QDividers: invalid number of bins %d", n))
	}
	d := floats.Span(make([]float64, n+1), 0, 1)
	d[n] = math.Nextafter(1, 2)
	return d
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil, in which case an empty histogram is created.
//Neither slice is modified.
func NewData(dividers []float64, rawdata []float64) *Data {
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	return d
}

//AddData adds the given data point(s) to the histogram.
//Points out of the dividers range are not counted.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		j := sort.SearchFloat64s(D.dividers, v)
		if j < len(D.dividers) && D.dividers[j] == v {
			j++
		}
		//v is in [dividers[j-1], dividers[j])
		if j > 0 && j < len(D.dividers) {
			D.histo[j-1]++
			D.total++
		}
	}
	if norma {
		D.Normalize()
	}
}

//ReHisto replaces the contents of the histogram by those of rawdata, with the
//given dividers. Values out of the range are not counted.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	x := make([]float64, len(rawdata))
	copy(x, rawdata)
	sort.Float64s(x)
	//stat.Histogram panics with values out of range, so they are removed first.
	maxi := sort.SearchFloat64s(x, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(x, dividers[0])
	x = x[mini:maxi]
	D.dividers = append([]float64(nil), dividers...)
	D.total = len(x)
	D.normalized = false
	if len(x) == 0 {
		D.histo = make([]float64, len(dividers)-1)
		return
	}
	D.histo = stat.Histogram(nil, D.dividers, x, nil)
}

//Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram, so it contains probabilities.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = normalize
	if normalize {
		n = 1 / n
	}
	floats.Scale(n, D.histo)
}

//Total is the number of data points added to the histogram.
func (D *Data) Total() int {
	return D.total
}

//Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//Centers returns the center of each bin.
func (D *Data) Centers() []float64 {
	ret := make([]float64, len(D.histo))
	for i := range ret {
		ret[i] = (D.dividers[i] + D.dividers[i+1]) / 2
	}
	return ret
}

//View returns the histogram itself, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//FreeEnergy returns the free energy profile F = -kB T ln P, in kcal/mol, for the
//histogram at temperature T (K). Empty bins get +Inf. The histogram is
//not modified.
func (D *Data) FreeEnergy(T float64) ([]float64, error) {
	if T <= 0 || math.IsNaN(T) {
		return nil, chm.InvalidConfig(fmt.Sprintf("invalid temperature %v", T), "FreeEnergy")
	}
	if D.total == 0 {
		return nil, chm.InvalidConfig("empty histogram", "FreeEnergy")
	}
	p := append([]float64(nil), D.histo...)
	if !D.normalized {
		floats.Scale(1/float64(D.total), p)
	}
	for i, v := range p {
		p[i] = -KB * T * math.Log(v) //log(0) is -Inf
	}
	return p, nil
}

//String prints a -hopefully- pretty representation of the histogram, in 2 lines.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{Normalized: D.normalized, Total: D.total, Dividers: D.dividers, Histo: D.histo})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
