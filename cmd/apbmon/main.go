// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"

	"github.com/ezrec/apbmon/apb"
	"github.com/ezrec/apbmon/internal"
	"github.com/ezrec/apbmon/trace"
)

func main() {
	var script string
	var addrWidth uint
	var dataWidth uint
	var quiet bool
	var verbose bool

	flag.StringVar(&script, "g", "", ".star trace generator script")
	flag.UintVar(&addrWidth, "a", 0, "PADDR width in bits (default 32)")
	flag.UintVar(&dataWidth, "d", 0, "PWDATA/PRDATA width in bits (default 32)")
	flag.BoolVar(&quiet, "q", false, "Print only the violation count")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	mon, err := apb.NewMonitor(apb.Config{AddrWidth: addrWidth, DataWidth: dataWidth})
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	mon.Verbose = verbose

	count := 0
	if !quiet {
		mon.Reporter = apb.ReporterFunc(func(violation apb.Violation) {
			fmt.Println(violation.String())
		})
	}

	if len(script) != 0 {
		// Synthetic trace from a generator script.
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		sc := &trace.Script{Config: mon.Config}
		samples, err := sc.Run(script, nil)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}

		for _, sample := range samples {
			count += len(mon.Tick(sample))
		}
	} else {
		// Recorded trace files, concatenated in argument order.
		// "-" (and no arguments at all) reads from stdin.
		files := flag.Args()
		if len(files) == 0 {
			files = []string{"-"}
		}

		rd := &trace.Reader{Config: mon.Config}
		var seqs []iter.Seq2[apb.BusSample, error]
		for _, name := range files {
			var input io.Reader = os.Stdin
			if name != "-" {
				inf, err := os.Open(name)
				if err != nil {
					log.Fatalf("%v: %v", name, err)
				}
				defer inf.Close()
				input = inf
			}
			seqs = append(seqs, rd.Samples(input))
		}

		for sample, err := range internal.IterSeq2Concat(seqs...) {
			if err != nil {
				log.Fatalf("%v", err)
			}
			count += len(mon.Tick(sample))
		}
	}

	if quiet {
		fmt.Println(count)
	} else if verbose {
		log.Printf("%v ticks, %v violations", mon.Ticks(), count)
	}

	if count != 0 {
		os.Exit(1)
	}
}
