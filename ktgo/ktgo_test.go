package ktgo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tatom struct {
	name, res, chain string
	resid            int
	x, y, z          float64
}

func pdbLine(id int, a tatom) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
		id, a.name, a.res, a.chain, a.resid, a.x, a.y, a.z, 1.0, 0.0, a.name[:1])
}

//testPDB has 5 residues in chain A and one in chain B. The side chains of A1 and A4, A1 and B1
//and A3 and B1 are in contact. A1 and A3 are close too, but too near in sequence.
func testPDB() string {
	atoms := []tatom{
		{"N", "ALA", "A", 1, -10, -10, 0}, {"CA", "ALA", "A", 1, -9, -10, 0}, {"C", "ALA", "A", 1, -8, -10, 0}, {"O", "ALA", "A", 1, -8, -11, 0},
		{"CB", "ALA", "A", 1, 0, 0, 0},
		{"N", "GLY", "A", 2, -7, -15, 0}, {"CA", "GLY", "A", 2, -6, -15, 0}, {"C", "GLY", "A", 2, -5, -15, 0}, {"O", "GLY", "A", 2, -5, -16, 0},
		{"N", "SER", "A", 3, -4, -20, 0}, {"CA", "SER", "A", 3, -3, -20, 0}, {"C", "SER", "A", 3, -2, -20, 0}, {"O", "SER", "A", 3, -2, -21, 0},
		{"CB", "SER", "A", 3, 1, 1, 0}, {"OG", "SER", "A", 3, 1, 2, 0},
		{"N", "LEU", "A", 4, -1, -25, 0}, {"CA", "LEU", "A", 4, 0, -25, 0}, {"C", "LEU", "A", 4, 1, -25, 0}, {"O", "LEU", "A", 4, 1, -26, 0},
		{"CB", "LEU", "A", 4, 3, 0, 0}, {"CG", "LEU", "A", 4, 4, 0, 0}, {"CD1", "LEU", "A", 4, 5, 0, 0}, {"CD2", "LEU", "A", 4, 4, 1, 0},
		{"HA", "LEU", "A", 4, 0.1, 0.1, 0.1},
		{"N", "VAL", "A", 5, 2, -30, 0}, {"CA", "VAL", "A", 5, 3, -30, 0}, {"C", "VAL", "A", 5, 4, -30, 0}, {"O", "VAL", "A", 5, 4, -31, 0},
		{"CB", "VAL", "A", 5, 20, 20, 20}, {"CG1", "VAL", "A", 5, 21, 20, 20}, {"CG2", "VAL", "A", 5, 20, 21, 20},
		{"N", "ALA", "B", 1, 30, 30, 30}, {"CA", "ALA", "B", 1, 31, 30, 30}, {"C", "ALA", "B", 1, 32, 30, 30}, {"O", "ALA", "B", 1, 32, 31, 30},
		{"CB", "ALA", "B", 1, 0, 0, 4},
	}
	var b strings.Builder
	b.WriteString("REMARK test structure\n")
	for i, a := range atoms {
		b.WriteString(pdbLine(i+1, a))
	}
	b.WriteString("ENDMDL\n")
	b.WriteString(pdbLine(99, tatom{"CA", "ALA", "C", 1, 0, 0, 0}))
	b.WriteString("END\n")
	return b.String()
}

func TestPDBRead(Te *testing.T) {
	S, err := PDBRead(strings.NewReader(testPDB()))
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 36 {
		Te.Errorf("36 atoms expected, got %d", S.Len())
	}
	if S.Coords.NVecs() != S.Len() {
		Te.Errorf("%d coordinates for %d atoms", S.Coords.NVecs(), S.Len())
	}
	at := S.Atoms[20]
	if at.Name != "CG" || at.MolName != "LEU" || at.MolID != 4 || at.Chain != "A" || at.Symbol != "C" {
		Te.Errorf("wrong atom read %+v", at)
	}
	if S.Coords.At(20, 0) != 4 {
		Te.Errorf("wrong coordinates %s", S.Coords.VecView(20))
	}
	if _, err := PDBRead(strings.NewReader("ATOM      1  CA  ALA A   1\n")); err == nil {
		Te.Error("truncated line accepted")
	}
	if _, err := PDBRead(strings.NewReader("REMARK nothing\n")); err == nil {
		Te.Error("PDB without atoms accepted")
	}
}

func TestNativeSCSC(Te *testing.T) {
	S, err := PDBRead(strings.NewReader(testPDB()))
	if err != nil {
		Te.Fatal(err)
	}
	M, err := New(S)
	if err != nil {
		Te.Fatal(err)
	}
	//A1: 1,2 A2: 3 A3: 4,5 A4: 6,7 A5: 8,9 B1: 10,11
	if len(M.Sites) != 11 || M.Coords.NVecs() != 11 {
		Te.Fatalf("11 sites expected, got %d", len(M.Sites))
	}
	if M.Sites[6].Addr() != "A.4.S" || M.Sites[6].Prm() != "sLEU" || M.Sites[5].Addr() != "A.4.B" {
		Te.Errorf("wrong sites %s %s %s", M.Sites[6].Addr(), M.Sites[6].Prm(), M.Sites[5].Addr())
	}
	//the LEU side chain site is the centroid of the 4 heavy atoms, the H is ignored.
	if M.Coords.At(6, 0) != 4 || M.Coords.At(6, 1) != 0.25 {
		Te.Errorf("wrong side chain site %s", M.Coords.VecView(6))
	}
	L, err := M.NativeSCSC(NativeCutoff, MinSeqSep)
	if err != nil {
		Te.Fatal(err)
	}
	got := make([][2]int, L.Len())
	for i := range got {
		got[i] = [2]int{L.At(i).I.Index(), L.At(i).J.Index()}
	}
	want := [][2]int{{2, 7}, {2, 11}, {5, 11}}
	if d := cmp.Diff(want, got); d != "" {
		Te.Errorf("native contacts (-want +got):\n%s", d)
	}
	if L.At(1).Dist != 4 {
		Te.Errorf("A1-B1 distance should be 4, got %f", L.At(1).Dist)
	}
	if _, err := M.NativeSCSC(0, MinSeqSep); err == nil {
		Te.Error("zero cutoff accepted")
	}
	//A1-B1 is exactly 4 A, so it stays at a 4 A cutoff. A3-B1 is 4.24 A.
	L, err = M.NativeSCSC(4, MinSeqSep)
	if err != nil {
		Te.Fatal(err)
	}
	got = got[:0]
	for i := 0; i < L.Len(); i++ {
		got = append(got, [2]int{L.At(i).I.Index(), L.At(i).J.Index()})
	}
	if d := cmp.Diff([][2]int{{2, 7}, {2, 11}}, got); d != "" {
		Te.Errorf("4 A cutoff (-want +got):\n%s", d)
	}
}

//withICode sets the insertion code column of a PDB atom line.
func withICode(line string, code byte) string {
	b := []byte(line)
	b[26] = code
	return string(b)
}

func TestInsertionCode(Te *testing.T) {
	atoms := []tatom{
		{"N", "ALA", "A", 52, 0, 0, 0}, {"CA", "ALA", "A", 52, 1, 0, 0}, {"CB", "ALA", "A", 52, 1, 1, 0},
		{"N", "GLY", "A", 52, 2, 0, 0}, {"CA", "GLY", "A", 52, 3, 0, 0},
		{"N", "LEU", "A", 53, 4, 0, 0}, {"CA", "LEU", "A", 53, 5, 0, 0}, {"CB", "LEU", "A", 53, 5, 1, 0},
	}
	var b strings.Builder
	for i, a := range atoms {
		line := pdbLine(i+1, a)
		if a.res == "GLY" {
			line = withICode(line, 'A')
		}
		b.WriteString(line)
	}
	S, err := PDBRead(strings.NewReader(b.String()))
	if err != nil {
		Te.Fatal(err)
	}
	if S.Atoms[0].ICode != ' ' || S.Atoms[3].ICode != 'A' {
		Te.Errorf("wrong insertion codes %q %q", S.Atoms[0].ICode, S.Atoms[3].ICode)
	}
	M, err := New(S)
	if err != nil {
		Te.Fatal(err)
	}
	addrs := make([]string, 0, len(M.Sites))
	for _, s := range M.Sites {
		addrs = append(addrs, s.Addr())
	}
	want := []string{"A.52.B", "A.52.S", "A.52A.B", "A.53.B", "A.53.S"}
	if d := cmp.Diff(want, addrs); d != "" {
		Te.Errorf("52 and 52A should be different residues (-want +got):\n%s", d)
	}
	//the ALA side chain is only its CB, not merged with the GLY atoms.
	if M.Coords.At(1, 0) != 1 || M.Coords.At(1, 1) != 1 {
		Te.Errorf("wrong side chain site %s", M.Coords.VecView(1))
	}
}
