/*
 * runner.go, part of charmminglib.
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

package correl

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	chm "github.com/joshuasmock/charmminglib"
	"golang.org/x/sync/errgroup"
)

//Runner runs CHARMM on the correl inputs.
type Runner struct {
	Command string        //the CHARMM executable
	Args    []string      //extra arguments for CHARMM, if any
	Timeout time.Duration //maximum time for each batch. 0 means no limit.
	//If Strict is false, which is the default, a non-zero exit status from CHARMM
	//is only logged, and problems show up later as missing or malformed correl outputs.
	//If true, it is returned as an error.
	Strict  bool
	Workers int //batches run at the same time. Less than 2 means one after the other.
}

//NewRunner returns a Runner with the defaults. The command is $CHARMM_EXEC or,
//if that is not defined, "charmm".
func NewRunner() *Runner {
	R := new(Runner)
	R.Command = os.ExpandEnv("${CHARMM_EXEC}")
	if R.Command == "" {
		R.Command = "charmm"
	}
	R.Workers = 1
	return R
}

//Run runs CHARMM once for each input in scripts, the ith script being batch i.
//The output of each run goes to LogName(outDir, i), which is deleted before the run.
//A missing input stops everything right away.
func (R *Runner) Run(ctx context.Context, scripts []string, outDir string) error {
	if R.Command == "" {
		return chm.InvalidConfig("no CHARMM executable given", "Run")
	}
	if err := chm.Mkdir(outDir); err != nil {
		return chm.ErrDecorate(err, "Run")
	}
	if R.Workers < 2 {
		for i, s := range scripts {
			if err := R.runBatch(ctx, i, s, outDir); err != nil {
				return chm.ErrDecorate(err, "Run")
			}
		}
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(R.Workers)
	for i, s := range scripts {
		i, s := i, s
		g.Go(func() error {
			return R.runBatch(gctx, i, s, outDir)
		})
	}
	return chm.ErrDecorate(g.Wait(), "Run")
}

func (R *Runner) runBatch(ctx context.Context, i int, script, outDir string) error {
	logname := LogName(outDir, i)
	os.Remove(logname) //it's fine if it's not there.
	in, err := os.Open(script)
	if err != nil {
		return chm.NewError(chm.ErrMissingScript, script, "", true, err, "runBatch")
	}
	defer in.Close()
	out, err := os.Create(logname)
	if err != nil {
		return chm.NewError(chm.ErrInvalidConfig, logname, "can't create CHARMM output", true, err, "runBatch")
	}
	defer out.Close()
	if R.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, R.Timeout)
		defer cancel()
	}
	command := exec.CommandContext(ctx, R.Command, R.Args...)
	command.Stdin = in
	command.Stdout = out
	command.Stderr = out
	log.Printf("correl: %s < %s > %s", R.Command, script, logname)
	err = command.Run()
	if err == nil {
		return nil
	}
	var exiterr *exec.ExitError
	if errors.As(err, &exiterr) && ctx.Err() == nil && !R.Strict {
		log.Printf("correl: CHARMM exited with status %d for %s. Check %s", exiterr.ExitCode(), script, logname)
		return nil
	}
	if ctx.Err() != nil {
		err = fmt.Errorf("%w (%v)", ctx.Err(), err)
	}
	return chm.NewError(chm.ErrExternalProgram, script, "check "+logname, true, err, "runBatch")
}
