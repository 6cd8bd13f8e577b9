package chm

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tsite int

func (s tsite) Index() int { return int(s) }
func (s tsite) Addr() string { return fmt.Sprintf("A.%d.S", int(s)) }
func (s tsite) Prm() string { return fmt.Sprintf("s%d", int(s)) }

func testList(Te *testing.T, n int) *ContactList {
	L, err := NewContactList()
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < n; i++ {
		c, err := NewContact(tsite(2*i+1), tsite(2*i+2), 5)
		if err != nil {
			Te.Fatal(err)
		}
		if err := L.Append(c); err != nil {
			Te.Fatal(err)
		}
	}
	return L
}

func TestBatches(Te *testing.T) {
	L := testList(Te, 250)
	b := L.Batches(BatchSize)
	sizes := make([]int, len(b))
	for i, v := range b {
		sizes[i] = len(v)
	}
	if d := cmp.Diff([]int{100, 100, 50}, sizes); d != "" {
		Te.Errorf("batch sizes (-want +got):\n%s", d)
	}
	//order is kept and local indexes restart in each batch
	for i, batch := range b {
		for j, c := range batch {
			if c != L.At(i*BatchSize+j) {
				Te.Errorf("batch %d, contact %d is not contact %d of the list", i, j, i*BatchSize+j)
			}
		}
	}
	if len(L.Batches(BatchSize)) != 3 {
		Te.Error("Batches is not a pure function")
	}
}

func TestChunk(Te *testing.T) {
	got := Chunk([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, 3)
	want := [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}, {12, 13}}
	if d := cmp.Diff(want, got); d != "" {
		Te.Errorf("(-want +got):\n%s", d)
	}
	if len(Chunk([]int{}, 3)) != 0 {
		Te.Error("empty slice should give no chunks")
	}
}

func TestAppendRejects(Te *testing.T) {
	L := testList(Te, 2)
	if err := L.Append(nil); !errors.Is(err, ErrInvalidConfig) {
		Te.Errorf("nil contact accepted: %v", err)
	}
	if err := L.Append(&Contact{I: tsite(3)}); !errors.Is(err, ErrInvalidConfig) {
		Te.Errorf("contact with nil site accepted: %v", err)
	}
	if _, err := NewContact(tsite(3), tsite(3), 1); !errors.Is(err, ErrInvalidConfig) {
		Te.Errorf("self contact accepted: %v", err)
	}
	if L.Len() != 2 {
		Te.Errorf("rejected contacts were stored, len %d", L.Len())
	}
	cs := L.Contacts()
	cs[0] = nil
	if L.At(0) == nil {
		Te.Error("Contacts should return a copy")
	}
}

func TestErrorDecorate(Te *testing.T) {
	cause := errors.New("boom")
	var err error = NewError(ErrMissingScript, "natq00.inp", "", true, cause, "Run")
	err = ErrDecorate(err, "DoCorrel")
	E := err.(*Error)
	if d := cmp.Diff([]string{"Run", "DoCorrel"}, E.Decorate("")); d != "" {
		Te.Errorf("decorations (-want +got):\n%s", d)
	}
	if !errors.Is(err, ErrMissingScript) || !errors.Is(err, cause) {
		Te.Errorf("errors.Is fails on %v", err)
	}
	if errors.Is(err, ErrMissingResult) {
		Te.Error("wrong kind matched")
	}
	if !E.Critical() || E.FileName() != "natq00.inp" {
		Te.Errorf("wrong fields in %#v", E)
	}
}

func TestPaths(Te *testing.T) {
	if _, err := ExpandPath(" "); !errors.Is(err, ErrInvalidConfig) {
		Te.Errorf("empty path accepted: %v", err)
	}
	p, err := ExpandPath("some/dir")
	if err != nil {
		Te.Fatal(err)
	}
	if !filepath.IsAbs(p) {
		Te.Errorf("%s is not absolute", p)
	}
	dir := filepath.Join(Te.TempDir(), "a", "b", "c")
	if err := Mkdir(dir); err != nil {
		Te.Fatal(err)
	}
	if err := Mkdir(dir); err != nil {
		Te.Errorf("existing directory: %v", err)
	}
	if err := Mkdir(""); !errors.Is(err, ErrInvalidConfig) {
		Te.Errorf("empty dir accepted: %v", err)
	}
}
