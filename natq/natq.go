/*
 * natq.go, part of charmminglib.
 *
 * Copyright 2026 The charmminglib Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package natq builds the native contact matrix of a coarse-grained simulation
//from the CHARMM correl outputs, stores it, and computes from it the
//fraction of native contacts, Q(t).
//
//Row k of the matrix is the distance series of the kth contact in the
//chm.ContactList used to write the CHARMM inputs. That order must be the same
//in every step.
package natq

import (
	"context"
	"log"
	"sync"

	chm "github.com/joshuasmock/charmminglib"
	"github.com/joshuasmock/charmminglib/correl"
	"github.com/joshuasmock/charmminglib/ktgo"
	"gonum.org/v1/gonum/mat"
)

//NatQ is a native contact analysis over one set of contacts and one set of directories.
type NatQ struct {
	Config   *Config
	Contacts *chm.ContactList
	Runner   *correl.Runner
	cache    *Cache
	mu       sync.Mutex
	report   Report
}

//New returns an analysis for the contacts in L, with the configuration C,
//which is validated.
func New(C *Config, L *chm.ContactList) (*NatQ, error) {
	if C == nil {
		return nil, chm.InvalidConfig("nil configuration", "New")
	}
	if L.Len() == 0 {
		return nil, chm.InvalidConfig("no contacts", "New")
	}
	if err := C.Validate(); err != nil {
		return nil, chm.ErrDecorate(err, "New")
	}
	N := &NatQ{Config: C, Contacts: L, Runner: C.Runner()}
	N.cache = NewCache(N.build)
	return N, nil
}

//NewFromPDB reads the native structure in C.PDB, coarse-grains it, and returns an analysis
//over its native side chain contacts.
func NewFromPDB(C *Config) (*NatQ, error) {
	if C == nil || C.PDB == "" {
		return nil, chm.InvalidConfig("no native structure given", "NewFromPDB")
	}
	aa, err := ktgo.PDBFileRead(C.PDB)
	if err != nil {
		return nil, chm.ErrDecorate(err, "NewFromPDB")
	}
	cg, err := ktgo.New(aa)
	if err != nil {
		return nil, chm.ErrDecorate(err, "NewFromPDB")
	}
	L, err := cg.NativeSCSC(C.NativeCutoff, C.MinSeqSep)
	if err != nil {
		return nil, chm.ErrDecorate(err, "NewFromPDB")
	}
	log.Printf("natq: %d native contacts among %d sites in %s", L.Len(), len(cg.Sites), C.PDB)
	return New(C, L)
}

func (N *NatQ) build(dir string) (*mat.Dense, error) {
	m, rep, err := BuildMatrix(N.Contacts, dir, N.Config.RowLength(), N.Config.Workers)
	if err != nil {
		return nil, err
	}
	N.mu.Lock()
	N.report = rep
	N.mu.Unlock()
	return m, nil
}

//Report returns the zero-filled rows found the last time the matrix was built
//in this analysis. It is empty if the matrix came from storage.
func (N *NatQ) Report() Report {
	N.mu.Lock()
	defer N.mu.Unlock()
	return N.report
}

//Data returns the native contact matrix. It is built only if it is not already in
//memory or stored in the analysis directory. A stored matrix with the wrong
//dimensions is discarded and rebuilt. The matrix must not be modified.
func (N *NatQ) Data() (*mat.Dense, error) {
	m, err := N.cache.Get(N.Config.AnlDir)
	if err != nil {
		return nil, chm.ErrDecorate(err, "Data")
	}
	if N.matches(m) {
		return m, nil
	}
	r, c := m.Dims()
	log.Printf("natq: stored matrix in %s is %dx%d, expected %dx%d. It will be rebuilt", N.Config.AnlDir, r, c, N.Contacts.Len(), N.Config.RowLength())
	if err := N.cache.Invalidate(N.Config.AnlDir); err != nil {
		return nil, chm.ErrDecorate(err, "Data")
	}
	m, err = N.cache.Get(N.Config.AnlDir)
	if err != nil {
		return nil, chm.ErrDecorate(err, "Data")
	}
	if !N.matches(m) {
		return nil, chm.NewError(chm.ErrCacheCorrupt, N.Config.AnlDir, "rebuilt matrix doesn't match the contacts", true, nil, "Data")
	}
	return m, nil
}

func (N *NatQ) matches(m *mat.Dense) bool {
	r, c := m.Dims()
	return r == N.Contacts.Len() && c == N.Config.RowLength()
}

//Invalidate removes the stored matrix, so the next call to Data rebuilds it.
func (N *NatQ) Invalidate() error {
	return chm.ErrDecorate(N.cache.Invalidate(N.Config.AnlDir), "Invalidate")
}

//SetNativeRad sets the native contact radius used by QofT.
func (N *NatQ) SetNativeRad(r float64) error {
	return chm.ErrDecorate(N.Config.SetNativeRad(r), "SetNativeRad")
}

//QofT returns the fraction of native contacts formed in each frame. If skipMissing
//is true, the contacts without data (all-zero rows) are left out.
func (N *NatQ) QofT(skipMissing bool) ([]float64, error) {
	m, err := N.Data()
	if err != nil {
		return nil, chm.ErrDecorate(err, "QofT")
	}
	var skip []int
	if skipMissing {
		skip = ZeroRows(m)
	}
	q, err := QofTMasked(m, N.Config.NativeRad, skip)
	return q, chm.ErrDecorate(err, "QofT")
}

//WriteCorrelInput writes the CHARMM inputs and returns their names.
func (N *NatQ) WriteCorrelInput() ([]string, error) {
	names, err := correl.WriteScripts(N.Contacts, N.Config.InpDir, N.Config.AnlDir, N.Config.Params())
	return names, chm.ErrDecorate(err, "WriteCorrelInput")
}

//RunCorrelInput runs CHARMM on the inputs written by WriteCorrelInput.
func (N *NatQ) RunCorrelInput(ctx context.Context) error {
	nbatch := len(N.Contacts.Batches(chm.BatchSize))
	scripts := make([]string, nbatch)
	for i := range scripts {
		scripts[i] = correl.ScriptName(N.Config.InpDir, i)
	}
	return chm.ErrDecorate(N.Runner.Run(ctx, scripts, N.Config.OutDir), "RunCorrelInput")
}

//DoCorrel writes the CHARMM inputs and runs them. The stored matrix, if any,
//no longer matches the new outputs, so it is invalidated.
func (N *NatQ) DoCorrel(ctx context.Context) error {
	if _, err := N.WriteCorrelInput(); err != nil {
		return chm.ErrDecorate(err, "DoCorrel")
	}
	if err := N.RunCorrelInput(ctx); err != nil {
		return chm.ErrDecorate(err, "DoCorrel")
	}
	return chm.ErrDecorate(N.Invalidate(), "DoCorrel")
}
