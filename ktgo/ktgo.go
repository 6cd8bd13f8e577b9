/*
 * ktgo.go, part of charmminglib.
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

//Package ktgo builds a Karanicolas-Brooks style Go model (KTGo) from an all-atom
//protein structure: one backbone site per residue, placed on the CA, and one
//side-chain site per residue with a side chain, placed on the centroid of its
//heavy atoms. It also finds the native side chain-side chain contacts, the
//contacts that the native contact analysis follows along a simulation.
package ktgo

import (
	"fmt"
	"log"
	"slices"

	chm "github.com/joshuasmock/charmminglib"
	v3 "github.com/joshuasmock/charmminglib/v3"
)

const (
	//NativeCutoff is the heavy-atom distance (A) up to which two side chains are in contact.
	NativeCutoff = 4.5
	//MinSeqSep is the minimum separation in sequence for two side chains of the
	//same chain to form a native contact.
	MinSeqSep = 3
)

var backbone = []string{"N", "CA", "C", "O", "OXT", "OT1", "OT2", "OC1", "OC2"}

//Site is a CG site. It implements chm.Site.
type Site struct {
	ID      int  //1-based index of the site in the CG model
	Kind    byte //'B' for backbone, 'S' for side chain
	Chain   string
	ResID   int
	ICode   byte //PDB insertion code, ' ' or 0 if none
	ResName string
}

//Index returns the atom number of the site in the CG model.
func (S *Site) Index() int { return S.ID }

//Addr returns the address of the site, chain.residue.kind. The insertion code,
//if any, follows the residue number, as in A.52A.S
func (S *Site) Addr() string {
	if S.ICode != 0 && S.ICode != ' ' {
		return fmt.Sprintf("%s.%d%c.%c", S.Chain, S.ResID, S.ICode, S.Kind)
	}
	return fmt.Sprintf("%s.%d.%c", S.Chain, S.ResID, S.Kind)
}

//Prm returns the name of the site's parameter type, i.e. "sLEU" for a leucine side chain.
func (S *Site) Prm() string {
	return fmt.Sprintf("%c%s", S.Kind+('a'-'A'), S.ResName)
}

type residue struct {
	chain string
	pos   int   //position in the chain, from 0
	heavy []int //indexes of the heavy side chain atoms in the structure
	s     int   //index of the side chain site in Model.Sites, or -1
}

//Model is a KTGo CG model of a protein.
type Model struct {
	Sites  []*Site
	Coords *v3.Matrix //coordinates of the sites, in the order of Sites.
	aa     *Structure
	res    []*residue
}

//New builds the CG model for the protein in aa. Residues without a CA atom
//(ligands, waters) are skipped.
func New(aa *Structure) (*Model, error) {
	M := &Model{aa: aa}
	coords := make([]float64, 0, 6*aa.Len())
	prevchain := ""
	pos := 0
	for _, idx := range residueRanges(aa) {
		first := aa.Atoms[idx[0]]
		ca := -1
		heavy := make([]int, 0, 10)
		for i := idx[0]; i < idx[1]; i++ {
			at := aa.Atoms[i]
			if at.Name == "CA" {
				ca = i
				continue
			}
			if at.Symbol == "H" || at.Symbol == "D" || slices.Contains(backbone, at.Name) {
				continue
			}
			heavy = append(heavy, i)
		}
		if ca < 0 {
			continue
		}
		if first.Chain != prevchain {
			pos = 0
			prevchain = first.Chain
		}
		r := &residue{chain: first.Chain, pos: pos, heavy: heavy, s: -1}
		pos++
		M.Sites = append(M.Sites, &Site{ID: len(M.Sites) + 1, Kind: 'B', Chain: first.Chain, ResID: first.MolID, ICode: first.ICode, ResName: first.MolName})
		coords = append(coords, aa.Coords.RawRowView(ca)...)
		if len(heavy) > 0 {
			if first.MolName == "GLY" {
				log.Printf("ktgo: glycine %s %d with side chain atoms, ignored", first.Chain, first.MolID)
				r.heavy = nil
			} else {
				c, err := v3.Centroid(aa.Coords, heavy...)
				if err != nil {
					return nil, err
				}
				r.s = len(M.Sites)
				M.Sites = append(M.Sites, &Site{ID: len(M.Sites) + 1, Kind: 'S', Chain: first.Chain, ResID: first.MolID, ICode: first.ICode, ResName: first.MolName})
				coords = append(coords, c.RawRowView(0)...)
			}
		}
		M.res = append(M.res, r)
	}
	if len(M.Sites) == 0 {
		return nil, chm.InvalidConfig("no protein residues in structure", "ktgo.New")
	}
	var err error
	M.Coords, err = v3.NewMatrix(coords)
	if err != nil {
		return nil, err
	}
	return M, nil
}

//residueRanges returns, for each residue in aa, the index of its first atom and
//the index after its last one. Residues are consecutive atoms with the same
//chain, residue number and insertion code.
func residueRanges(aa *Structure) [][2]int {
	ret := make([][2]int, 0, aa.Len()/8+1)
	start := 0
	for i := 1; i <= aa.Len(); i++ {
		if i < aa.Len() {
			a, b := aa.Atoms[i-1], aa.Atoms[i]
			if a.MolID == b.MolID && a.ICode == b.ICode && a.Chain == b.Chain {
				continue
			}
		}
		ret = append(ret, [2]int{start, i})
		start = i
	}
	return ret
}

//NativeSCSC returns the native side chain-side chain contacts of the model. Two side
//chains are in contact if any pair of their heavy atoms is not farther than cutoff, and, if
//they belong to the same chain, they are at least minsep residues apart. The contacts
//are ordered by the first site, then by the second one.
func (M *Model) NativeSCSC(cutoff float64, minsep int) (*chm.ContactList, error) {
	if cutoff <= 0 {
		return nil, chm.InvalidConfig(fmt.Sprintf("invalid native cutoff %f", cutoff), "NativeSCSC")
	}
	L, _ := chm.NewContactList()
	for i, ri := range M.res {
		if ri.s < 0 {
			continue
		}
		for _, rj := range M.res[i+1:] {
			if rj.s < 0 {
				continue
			}
			if ri.chain == rj.chain && rj.pos-ri.pos < minsep {
				continue
			}
			d, _, _ := v3.MinDist(M.aa.Coords, ri.heavy, M.aa.Coords, rj.heavy)
			if d > cutoff {
				continue
			}
			c, err := chm.NewContact(M.Sites[ri.s], M.Sites[rj.s], v3.Dist(M.Coords, ri.s, M.Coords, rj.s))
			if err != nil {
				return nil, chm.ErrDecorate(err, "NativeSCSC")
			}
			if err := L.Append(c); err != nil {
				return nil, chm.ErrDecorate(err, "NativeSCSC")
			}
		}
	}
	return L, nil
}

//String returns a short description of the model.
func (M *Model) String() string {
	return fmt.Sprintf("KTGo model: %d residues, %d sites", len(M.res), len(M.Sites))
}
