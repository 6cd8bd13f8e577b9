package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProfile(Te *testing.T) {
	q := []float64{0.1, 0.2, 0.9, 0.6}
	var b bytes.Buffer
	if err := profile(&b, q, 2, 300, "", false); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		Te.Fatalf("header and 2 bins expected, got:\n%s", b.String())
	}
	if d := cmp.Diff([]string{"Q", "P(Q)", "F(kcal/mol)"}, strings.Fields(lines[0])); d != "" {
		Te.Errorf("header (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"0.2500", "0.500000"}, strings.Fields(lines[1])[:2]); d != "" {
		Te.Errorf("first bin (-want +got):\n%s", d)
	}
	if err := profile(&b, q, 2, -1, "", false); err == nil {
		Te.Error("negative temperature accepted")
	}
}

func TestProfilePlot(Te *testing.T) {
	q := []float64{0.1, 0.2, 0.9, 0.6, 0.65}
	name := filepath.Join(Te.TempDir(), "f.png")
	//no -hist: nothing printed, default bins.
	if err := profile(nil, q, 0, 300, name, true); err != nil {
		Te.Fatal(err)
	}
	if info, err := os.Stat(name); err != nil || info.Size() == 0 {
		Te.Errorf("free energy plot not written: %v", err)
	}
}

func TestWriteQ(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "q.dat")
	if err := writeQ(name, []float64{1, 0.5}); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if d := cmp.Diff("0 1.000000\n1 0.500000\n", string(b)); d != "" {
		Te.Errorf("(-want +got):\n%s", d)
	}
	if err := writeQ(filepath.Join(Te.TempDir(), "no", "q.dat"), nil); err == nil {
		Te.Error("file in a missing directory accepted")
	}
}
