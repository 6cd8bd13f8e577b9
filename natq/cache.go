/*
 * cache.go, part of charmminglib.
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

package natq

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	chm "github.com/joshuasmock/charmminglib"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/singleflight"
	"gonum.org/v1/gonum/mat"
)

//CacheName is the name of the stored contact matrix, in the analysis directory.
const CacheName = "natq.zst"

//BuildFunc builds the contact matrix for the analysis directory dir.
type BuildFunc func(dir string) (*mat.Dense, error)

//Cache keeps the contact matrices for analysis directories, both in memory
//and on disk, as CacheName in each directory. A matrix is built only when
//neither is available. Concurrent requests for the same directory build
//the matrix once. Matrices returned by a Cache are shared and must not be modified.
type Cache struct {
	build  BuildFunc
	mu     sync.Mutex
	mem    map[string]*mat.Dense
	locks  map[string]*sync.Mutex
	flight singleflight.Group
}

//NewCache returns an empty cache that uses build to obtain the matrices.
func NewCache(build BuildFunc) *Cache {
	return &Cache{build: build, mem: make(map[string]*mat.Dense), locks: make(map[string]*sync.Mutex)}
}

func (C *Cache) memory(dir string) *mat.Dense {
	C.mu.Lock()
	defer C.mu.Unlock()
	return C.mem[dir]
}

func (C *Cache) dirLock(dir string) *sync.Mutex {
	C.mu.Lock()
	defer C.mu.Unlock()
	l, ok := C.locks[dir]
	if !ok {
		l = new(sync.Mutex)
		C.locks[dir] = l
	}
	return l
}

//Get returns the contact matrix for dir. It is taken from memory, or from
//the stored file, or built (and stored) in that order. A stored file
//that can't be read or decoded is logged and rebuilt, so only a failed
//build is an error.
func (C *Cache) Get(dir string) (*mat.Dense, error) {
	dir = filepath.Clean(dir)
	if m := C.memory(dir); m != nil {
		return m, nil
	}
	v, err, _ := C.flight.Do(dir, func() (interface{}, error) {
		lock := C.dirLock(dir)
		lock.Lock()
		defer lock.Unlock()
		if m := C.memory(dir); m != nil {
			return m, nil
		}
		name := filepath.Join(dir, CacheName)
		m, err := LoadMatrix(name)
		if err == nil {
			log.Printf("natq: found stored data in %s", name)
			C.set(dir, m)
			return m, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("natq: can't use the stored matrix: %v. It will be rebuilt", err)
		}
		log.Printf("natq: processing data in %s", dir)
		m, err = C.build(dir)
		if err != nil {
			return nil, chm.ErrDecorate(err, "Get")
		}
		if err := SaveMatrix(name, m); err != nil {
			log.Printf("natq: can't store the contact matrix, it will be kept only in memory: %v", err)
		}
		C.set(dir, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mat.Dense), nil
}

func (C *Cache) set(dir string, m *mat.Dense) {
	C.mu.Lock()
	C.mem[dir] = m
	C.mu.Unlock()
}

//Forget drops the in-memory copy of the matrix for dir. The stored file stays.
func (C *Cache) Forget(dir string) {
	dir = filepath.Clean(dir)
	C.mu.Lock()
	delete(C.mem, dir)
	C.mu.Unlock()
}

//Invalidate drops both the in-memory and the stored matrix for dir, so the
//next Get rebuilds it.
func (C *Cache) Invalidate(dir string) error {
	dir = filepath.Clean(dir)
	lock := C.dirLock(dir)
	lock.Lock()
	defer lock.Unlock()
	C.Forget(dir)
	name := filepath.Join(dir, CacheName)
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return chm.NewError(chm.ErrInvalidConfig, name, "can't remove stored matrix", true, err, "Invalidate")
	}
	return nil
}

//SaveMatrix writes m to name as a zstd-compressed gonum binary matrix. The file is
//first written to a temporary file, which is then renamed, so name is never left
//half-written.
func SaveMatrix(name string, m *mat.Dense) error {
	raw, err := m.MarshalBinary()
	if err != nil {
		return chm.NewError(chm.ErrInvalidConfig, name, "can't encode matrix", false, err, "SaveMatrix")
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	blob := enc.EncodeAll(raw, nil)
	enc.Close()
	tmp, err := os.CreateTemp(filepath.Dir(name), ".natq-*")
	if err != nil {
		return chm.NewError(chm.ErrInvalidConfig, name, "", false, err, "SaveMatrix")
	}
	defer os.Remove(tmp.Name()) //a no-op after the rename.
	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return chm.NewError(chm.ErrInvalidConfig, tmp.Name(), "", false, err, "SaveMatrix")
	}
	if err := tmp.Close(); err != nil {
		return chm.NewError(chm.ErrInvalidConfig, tmp.Name(), "", false, err, "SaveMatrix")
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return chm.NewError(chm.ErrInvalidConfig, name, "", false, err, "SaveMatrix")
	}
	return nil
}

//LoadMatrix reads a matrix written by SaveMatrix. If name doesn't exist, the
//error wraps fs.ErrNotExist. If it can't be decoded, it is a chm.ErrCacheCorrupt.
func LoadMatrix(name string) (*mat.Dense, error) {
	blob, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, chm.NewError(chm.ErrCacheCorrupt, name, "", false, err, "LoadMatrix")
	}
	m := new(mat.Dense)
	if err := m.UnmarshalBinary(raw); err != nil {
		return nil, chm.NewError(chm.ErrCacheCorrupt, name, "", false, err, "LoadMatrix")
	}
	return m, nil
}
