/*
 * contact.go, part of charmminglib.
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

package chm

import "fmt"

//BatchSize is the maximum number of contacts per CHARMM correl input.
//CHARMM can only handle so many series (and open units) in one correl call.
const BatchSize = 100

//Contact is a native contact between the sites I and J.
type Contact struct {
	I, J Site
	Dist float64 //distance between the sites in the native structure, in A.
}

//NewContact returns a contact between i and j, or error if the contact can't exist.
func NewContact(i, j Site, dist float64) (*Contact, error) {
	C := &Contact{I: i, J: j, Dist: dist}
	if err := C.check(); err != nil {
		return nil, ErrDecorate(err, "NewContact")
	}
	return C, nil
}

func (C *Contact) check() error {
	if C == nil || C.I == nil || C.J == nil {
		return InvalidConfig("contact with nil site", "check")
	}
	if C.I.Index() == C.J.Index() {
		return InvalidConfig(fmt.Sprintf("site %s can't be in contact with itself", C.I.Addr()), "check")
	}
	return nil
}

func (C *Contact) String() string {
	return fmt.Sprintf("%s-%s %5.2f", C.I.Addr(), C.J.Addr(), C.Dist)
}

//ContactList is an ordered list of native contacts. The position of a contact
//in the list is its row in the contact matrix, and determines the name of its
//correl output file, so the list can't be reordered, and elements can only be
//appended.
type ContactList struct {
	c []*Contact
}

//NewContactList returns a list with the given contacts, in that order. It fails
//if any of them is not a valid contact.
func NewContactList(contacts ...*Contact) (*ContactList, error) {
	L := &ContactList{c: make([]*Contact, 0, len(contacts))}
	for _, v := range contacts {
		if err := L.Append(v); err != nil {
			return nil, ErrDecorate(err, "NewContactList")
		}
	}
	return L, nil
}

//Append adds C at the end of the list. Only valid contacts (non-nil, with 2 different
//non-nil sites) are accepted.
func (L *ContactList) Append(C *Contact) error {
	if err := C.check(); err != nil {
		return ErrDecorate(err, "Append")
	}
	L.c = append(L.c, C)
	return nil
}

//Len returns the number of contacts in the list.
func (L *ContactList) Len() int {
	if L == nil {
		return 0
	}
	return len(L.c)
}

//At returns the ith contact. It panics if i is out of range.
func (L *ContactList) At(i int) *Contact {
	return L.c[i]
}

//Contacts returns a copy of the contact slice
func (L *ContactList) Contacts() []*Contact {
	ret := make([]*Contact, len(L.c))
	copy(ret, L.c)
	return ret
}

//Batches splits the list in consecutive groups of at most n contacts, keeping
//the order. The last group holds the remainder. The groups are views
//of the list, and must not be modified.
func (L *ContactList) Batches(n int) [][]*Contact {
	return Chunk(L.c, n)
}

//Chunk splits s in consecutive slices of n elements, the last one
//holding the remainder. It panics if n < 1.
func Chunk[T any](s []T, n int) [][]T {
	if n < 1 {
		panic(fmt.Sprintf("chm.Chunk: invalid chunk size %d", n))
	}
	ret := make([][]T, 0, (len(s)+n-1)/n)
	for i := 0; i < len(s); i += n {
		end := min(i+n, len(s))
		ret = append(ret, s[i:end:end])
	}
	return ret
}
