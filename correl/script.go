/*
 * script.go, part of charmminglib.
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

//Package correl deals with CHARMM's correl facility for the native contact analysis.
//It writes the CHARMM inputs that measure, along a trajectory, the distance between
//the two sites of every native contact, runs CHARMM on them, and reads the resulting
//time series back.
//
//The contacts are processed in batches of chm.BatchSize. Batch b is written to
//natq<b>.inp, its CHARMM output goes to natq<b>.out and the series for its jth
//contact is written by CHARMM to natq<b><j>.anl, all numbers in 2 digits.
package correl

import (
	"fmt"
	"log"
	"os"
	"strings"

	chm "github.com/joshuasmock/charmminglib"
)

const (
	MaxAtom   = 1000 //maxatom in the correl command
	TrajUnit  = 10   //unit from which CHARMM reads the trajectory
	firstUnit = 100  //output units are firstUnit + index of the contact in the batch
)

//Params are the parameters of the correl calculation.
type Params struct {
	Header      []string //lines prepended to each input, verbatim (title, rtf/prm/psf reading, trajectory opening...)
	ArrayLength int      //maxtimesteps. If 0, RowLength() is used.
	Start       int      //first step of the trajectory to read
	Stop        int      //last step
	Skip        int      //read every Skip steps
}

//RowLength is the number of frames, hence of values in each series, that
//correl will produce.
func (P Params) RowLength() int {
	return (P.Stop-P.Start)/P.Skip + 1
}

//Check returns an error if the parameters can't describe a correl calculation.
func (P Params) Check() error {
	if P.Skip < 1 {
		return chm.InvalidConfig(fmt.Sprintf("skip must be positive, got %d", P.Skip), "Check")
	}
	if P.Start < 0 || P.Stop < P.Start {
		return chm.InvalidConfig(fmt.Sprintf("invalid trajectory window %d-%d", P.Start, P.Stop), "Check")
	}
	if P.ArrayLength < 0 || (P.ArrayLength > 0 && P.ArrayLength < P.RowLength()) {
		return chm.InvalidConfig(fmt.Sprintf("correl array length %d can't hold %d frames", P.ArrayLength, P.RowLength()), "Check")
	}
	return nil
}

func (P Params) arrayLength() int {
	if P.ArrayLength == 0 {
		return P.RowLength()
	}
	return P.ArrayLength
}

//Script returns the CHARMM input for the batch b, containing the contacts in batch,
//which correl outputs will be written to anlDir. The output depends only on the arguments.
//It panics if the batch has more than chm.BatchSize contacts.
func Script(b int, batch []*chm.Contact, anlDir string, P Params) string {
	if len(batch) > chm.BatchSize {
		panic(fmt.Sprintf("correl.Script: %d contacts in batch, max is %d", len(batch), chm.BatchSize))
	}
	s := make([]string, 0, len(P.Header)+6*len(batch)+12)
	s = append(s, P.Header...)
	s = append(s, "! anl :: write")
	for j := range batch {
		s = append(s, fmt.Sprintf("open unit %03d write card name %s", j+firstUnit, ResultName(anlDir, b, j)))
	}
	s = append(s, "")
	s = append(s, fmt.Sprintf("correl maxtimesteps %d maxatom %d maxseries %d", P.arrayLength(), MaxAtom, len(batch)))
	for j, c := range batch {
		s = append(s, fmt.Sprintf("enter n%03d bond bynum %d bynum %d geometry", j, c.I.Index(), c.J.Index()))
	}
	s = append(s, fmt.Sprintf("traj firstu %d nunit 1 begin %d stop %d skip %d select all end", TrajUnit, P.Start, P.Stop, P.Skip))
	s = append(s, "")
	for j, c := range batch {
		s = append(s, fmt.Sprintf("write n%03d card unit %03d", j, j+firstUnit))
		s = append(s, fmt.Sprintf("* Contact %02d%02d: between cgAtoms %s and %s", b, j, c.I.Addr(), c.J.Addr()))
		s = append(s, fmt.Sprintf("* Native Contact - Interaction between %s and %s", c.I.Prm(), c.J.Prm()))
		s = append(s, "*")
		s = append(s, "")
	}
	s = append(s, "end", "", fmt.Sprintf("rewind unit %d", TrajUnit), "", "stop")
	return strings.Join(s, "\n")
}

//WriteScripts writes one CHARMM input per batch of contacts of L to inpDir, and returns
//their names, in batch order. The inputs will make CHARMM write the series to anlDir.
//Both directories are created if needed.
func WriteScripts(L *chm.ContactList, inpDir, anlDir string, P Params) ([]string, error) {
	if err := P.Check(); err != nil {
		return nil, chm.ErrDecorate(err, "WriteScripts")
	}
	if L.Len() == 0 {
		return nil, chm.InvalidConfig("no contacts to write", "WriteScripts")
	}
	for _, d := range []string{anlDir, inpDir} {
		if err := chm.Mkdir(d); err != nil {
			return nil, chm.ErrDecorate(err, "WriteScripts")
		}
	}
	batches := L.Batches(chm.BatchSize)
	names := make([]string, 0, len(batches))
	for b, batch := range batches {
		name := ScriptName(inpDir, b)
		if err := os.WriteFile(name, []byte(Script(b, batch, anlDir, P)), 0o644); err != nil {
			return names, chm.NewError(chm.ErrInvalidConfig, name, "can't write CHARMM input", true, err, "WriteScripts")
		}
		log.Printf("correl: wrote %s (%d contacts)", name, len(batch))
		names = append(names, name)
	}
	return names, nil
}
