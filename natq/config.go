/*
 * config.go, part of charmminglib.
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
	"fmt"
	"math"
	"os"
	"time"

	chm "github.com/joshuasmock/charmminglib"
	"github.com/joshuasmock/charmminglib/correl"
	"github.com/joshuasmock/charmminglib/ktgo"
	"github.com/pelletier/go-toml"
)

//DefaultNativeRad is the default cutoff (A) for a native contact to be formed.
const DefaultNativeRad = 8.0

//Config contains the parameters of a native contact analysis. It can be read
//from a TOML file with LoadConfig.
type Config struct {
	PDB    string `toml:"pdb"`     //all-atom native structure
	InpDir string `toml:"inp_dir"` //CHARMM inputs. Defaults to AnlDir
	OutDir string `toml:"out_dir"` //CHARMM outputs. Defaults to InpDir
	AnlDir string `toml:"anl_dir"` //correl outputs and stored contact matrix

	CharmmBin  string   `toml:"charmm_bin"` //defaults to $CHARMM_EXEC, or "charmm"
	CharmmArgs []string `toml:"charmm_args"`
	Header     []string `toml:"header"` //lines that go at the beginning of each CHARMM input
	Timeout    string   `toml:"timeout"`
	StrictExit bool     `toml:"strict_exit"`
	Workers    int      `toml:"workers"`

	CorrelStart       int `toml:"correl_start"`
	CorrelStop        int `toml:"correl_stop"`
	CorrelSkip        int `toml:"correl_skip"`
	CorrelArrayLength int `toml:"correl_array_length"`

	NativeRad    float64 `toml:"native_rad"`
	NativeCutoff float64 `toml:"native_cutoff"` //heavy atom cutoff to find the native contacts
	MinSeqSep    int     `toml:"min_seq_sep"`

	timeout time.Duration
}

//DefaultConfig returns a configuration with the defaults set. The directories
//and the trajectory window still need to be given.
func DefaultConfig() *Config {
	C := new(Config)
	C.defaults()
	return C
}

func (C *Config) defaults() {
	if C.NativeRad == 0 {
		C.NativeRad = DefaultNativeRad
	}
	if C.NativeCutoff == 0 {
		C.NativeCutoff = ktgo.NativeCutoff
	}
	if C.MinSeqSep == 0 {
		C.MinSeqSep = ktgo.MinSeqSep
	}
	if C.CorrelSkip == 0 {
		C.CorrelSkip = 1
	}
	if C.Workers == 0 {
		C.Workers = 1
	}
}

//LoadConfig reads the TOML file path. Fields not in the file get the defaults, and the
//result is validated.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chm.NewError(chm.ErrInvalidConfig, path, "", true, err, "LoadConfig")
	}
	defer f.Close()
	C := new(Config)
	if err := toml.NewDecoder(f).Decode(C); err != nil {
		return nil, chm.NewError(chm.ErrInvalidConfig, path, "can't parse", true, err, "LoadConfig")
	}
	C.defaults()
	if err := C.Validate(); err != nil {
		return nil, chm.ErrDecorate(err, "LoadConfig")
	}
	return C, nil
}

//Validate checks the configuration and expands the directory paths. It
//returns a chm.ErrInvalidConfig on the first problem found.
func (C *Config) Validate() error {
	if err := CheckNativeRad(C.NativeRad); err != nil {
		return chm.ErrDecorate(err, "Validate")
	}
	if err := C.Params().Check(); err != nil {
		return chm.ErrDecorate(err, "Validate")
	}
	if C.Workers < 1 {
		return chm.InvalidConfig(fmt.Sprintf("invalid number of workers %d", C.Workers), "Validate")
	}
	var err error
	if C.AnlDir, err = chm.ExpandPath(C.AnlDir); err != nil {
		return chm.ErrDecorate(err, "Validate: anl_dir")
	}
	if C.InpDir == "" {
		C.InpDir = C.AnlDir
	}
	if C.InpDir, err = chm.ExpandPath(C.InpDir); err != nil {
		return chm.ErrDecorate(err, "Validate: inp_dir")
	}
	if C.OutDir == "" {
		C.OutDir = C.InpDir
	}
	if C.OutDir, err = chm.ExpandPath(C.OutDir); err != nil {
		return chm.ErrDecorate(err, "Validate: out_dir")
	}
	if C.PDB != "" {
		if C.PDB, err = chm.ExpandPath(C.PDB); err != nil {
			return chm.ErrDecorate(err, "Validate: pdb")
		}
	}
	C.timeout = 0
	if C.Timeout != "" {
		C.timeout, err = time.ParseDuration(C.Timeout)
		if err != nil || C.timeout < 0 {
			return chm.InvalidConfig(fmt.Sprintf("invalid timeout %q", C.Timeout), "Validate")
		}
	}
	return nil
}

//SetNativeRad sets the native contact radius, which must be larger than 1 A.
func (C *Config) SetNativeRad(r float64) error {
	if err := CheckNativeRad(r); err != nil {
		return chm.ErrDecorate(err, "SetNativeRad")
	}
	C.NativeRad = r
	return nil
}

//CheckNativeRad returns an error unless r is a valid native contact radius,
//i.e. a number larger than 1 (A).
func CheckNativeRad(r float64) error {
	if math.IsNaN(r) || r <= 1 {
		return chm.InvalidConfig(fmt.Sprintf("the native contact radius must be larger than 1, got %v", r), "CheckNativeRad")
	}
	return nil
}

//Params returns the parameters for the correl inputs.
func (C *Config) Params() correl.Params {
	return correl.Params{
		Header:      C.Header,
		ArrayLength: C.CorrelArrayLength,
		Start:       C.CorrelStart,
		Stop:        C.CorrelStop,
		Skip:        C.CorrelSkip,
	}
}

//RowLength is the number of frames in each correl series.
func (C *Config) RowLength() int {
	return C.Params().RowLength()
}

//Runner returns a CHARMM runner set up according to the configuration.
func (C *Config) Runner() *correl.Runner {
	R := correl.NewRunner()
	if C.CharmmBin != "" {
		R.Command = C.CharmmBin
	}
	R.Args = C.CharmmArgs
	R.Timeout = C.timeout
	R.Strict = C.StrictExit
	R.Workers = C.Workers
	return R
}
