/*
natq, native contact analysis for KTGo coarse-grained CHARMM simulations.

Usage:

	natq -config natq.toml [-write] [-run] [-q FILE] [-plot FILE] [-hist N] [-fplot FILE]

The native side chain contacts are taken from the all-atom structure given
in the configuration file. -write writes the CHARMM correl inputs and -run runs
them. -q, -plot, -hist and -fplot read the correl outputs (or the stored contact
matrix) and write the fraction of native contacts, Q(t), or its distribution.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joshuasmock/charmminglib/chemplot"
	"github.com/joshuasmock/charmminglib/histo"
	"github.com/joshuasmock/charmminglib/natq"
)

func main() {
	config := flag.String("config", "", "TOML configuration file (required)")
	write := flag.Bool("write", false, "Write the CHARMM correl inputs")
	run := flag.Bool("run", false, "Run CHARMM on the correl inputs")
	qfile := flag.String("q", "", "Write Q(t) to this file (- for the standard output)")
	plotfile := flag.String("plot", "", "Plot Q(t) to this file. The format is taken from the extension")
	dt := flag.Float64("dt", 0, "Time between frames, for the plot. If 0, frame numbers are used")
	nbins := flag.Int("hist", 0, "Print the distribution of Q and the free energy profile, with this many bins")
	temp := flag.Float64("temp", 300, "Temperature (K) for the free energy profile")
	fplot := flag.String("fplot", "", "Plot the free energy profile to this file. Uses -hist bins, or 20")
	rad := flag.Float64("rad", 0, "Native contact radius (A). Overrides the configuration file")
	invalidate := flag.Bool("invalidate", false, "Remove the stored contact matrix before anything else")
	skipmissing := flag.Bool("skipmissing", false, "Leave the contacts without correl output out of Q")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()
	if *config == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	C, err := natq.LoadConfig(*config)
	if err != nil {
		log.Fatal(err)
	}
	if *rad != 0 {
		if err := C.SetNativeRad(*rad); err != nil {
			log.Fatal(err)
		}
	}
	N, err := natq.NewFromPDB(C)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		for i, c := range N.Contacts.Contacts() {
			log.Printf("contact %04d: %s", i, c)
		}
	}
	if *invalidate {
		if err := N.Invalidate(); err != nil {
			log.Fatal(err)
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	switch {
	case *write && *run:
		err = N.DoCorrel(ctx)
	case *write:
		_, err = N.WriteCorrelInput()
	case *run:
		err = N.RunCorrelInput(ctx)
		if err == nil {
			err = N.Invalidate()
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	if *qfile == "" && *plotfile == "" && *nbins == 0 && *fplot == "" {
		return
	}
	q, err := N.QofT(*skipmissing)
	if err != nil {
		log.Fatal(err)
	}
	if rep := N.Report(); !rep.OK() {
		log.Printf("%d contacts missing and %d with malformed correl outputs", len(rep.Missing), len(rep.Malformed))
	}
	if *qfile != "" {
		if err := writeQ(*qfile, q); err != nil {
			log.Fatal(err)
		}
	}
	if *plotfile != "" {
		if err := chemplot.QPlot(q, *dt, "Fraction of native contacts", *plotfile); err != nil {
			log.Fatal(err)
		}
	}
	if *nbins > 0 || *fplot != "" {
		var out io.Writer
		if *nbins > 0 {
			out = os.Stdout
		}
		if err := profile(out, q, *nbins, *temp, *fplot, *verbose); err != nil {
			log.Fatal(err)
		}
	}
}

//defaultBins is the number of bins for the free energy plot when -hist is not given.
const defaultBins = 20

//profile histograms q into nbins bins (defaultBins if nbins < 1), and prints
//the distribution and the free energy at temperature temp to out, if it is not nil.
//If fplot is not empty, the free energy is also plotted to that file.
func profile(out io.Writer, q []float64, nbins int, temp float64, fplot string, verbose bool) error {
	if nbins < 1 {
		nbins = defaultBins
	}
	D := histo.NewData(histo.QDividers(nbins), q)
	if verbose {
		log.Printf("Q histogram:\n%s", D)
	}
	F, err := D.FreeEnergy(temp)
	if err != nil {
		return err
	}
	if fplot != "" {
		if err := chemplot.FreeEnergyPlot(D.Centers(), F, "Free energy", fplot); err != nil {
			return err
		}
	}
	if out == nil {
		return nil
	}
	D.Normalize()
	b := bufio.NewWriter(out)
	fmt.Fprintf(b, "%8s %10s %12s\n", "Q", "P(Q)", "F(kcal/mol)")
	for i, c := range D.Centers() {
		fmt.Fprintf(b, "%8.4f %10.6f %12.4f\n", c, D.View()[i], F[i])
	}
	return b.Flush()
}

func writeQ(name string, q []float64) (err error) {
	var w io.Writer = os.Stdout
	if name != "-" {
		var f *os.File
		f, err = os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	b := bufio.NewWriter(w)
	for i, v := range q {
		fmt.Fprintf(b, "%d %.6f\n", i, v)
	}
	return b.Flush()
}
