/*
 * pdb.go, part of charmminglib.
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

package ktgo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	v3 "github.com/joshuasmock/charmminglib/v3"
)

//Atom contains the information read for an atom, except for the coordinates,
//which go to a v3.Matrix.
type Atom struct {
	Name    string
	ID      int
	MolName string //residue name
	MolID   int    //residue number, as in the PDB
	ICode   byte   //insertion code, ' ' if none
	Chain   string
	Symbol  string
	Het     bool //is hetatm in the pdb file?
}

//Structure is the all-atom structure read from a PDB file.
type Structure struct {
	Atoms  []*Atom
	Coords *v3.Matrix
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//PDBFileRead reads the first model of the PDB file pdbname.
func PDBFileRead(pdbname string) (*Structure, error) {
	f, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := PDBRead(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pdbname, err)
	}
	return S, nil
}

//PDBRead reads the ATOM and HETATM records of the first model in pdb. Alternative
//locations other than the first ("A") are ignored.
func PDBRead(pdb io.Reader) (*Structure, error) {
	atoms := make([]*Atom, 0, 1000)
	coords := make([]float64, 0, 3000)
	s := bufio.NewScanner(pdb)
	linenu := 0
	for s.Scan() {
		linenu++
		line := s.Text()
		if strings.HasPrefix(line, "ENDMDL") || strings.HasPrefix(line, "END ") || line == "END" {
			if len(atoms) > 0 {
				break
			}
			continue
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if len(line) < 54 {
			return nil, fmt.Errorf("line %d: truncated atom record", linenu)
		}
		if alt := line[16]; alt != ' ' && alt != 'A' {
			continue
		}
		at, c, err := readPDBLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", linenu, err)
		}
		atoms = append(atoms, at)
		coords = append(coords, c[:]...)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("no atoms found")
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, err
	}
	return &Structure{Atoms: atoms, Coords: m}, nil
}

//readPDBLine parses a valid ATOM or HETATM line of a PDB file, returns an Atom
//object with the info except for the coordinates, which are returned separately.
func readPDBLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	err := make([]error, 5) //accumulate errors to check at the end of the line.
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	atom.ICode = line[26]
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range err {
		if e != nil {
			return nil, coords, e
		}
	}
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
	}
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(atom.Name)
	}
	return atom, coords, nil
}

//symbolFromName guesses the element from the PDB atom name. It only needs to
//get hydrogens right, which is what matters for the CG model.
func symbolFromName(name string) string {
	name = strings.TrimLeftFunc(name, unicode.IsDigit)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1])
}
