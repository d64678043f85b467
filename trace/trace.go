// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package trace supplies BusSample sequences to the monitor: a tabular
// text format for recorded traces, and a Starlark generator for
// synthetic ones.
package trace

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/apbmon/apb"
)

// Reader parses the tabular trace format. One line per clock tick:
// whitespace-separated name=value tokens, '#' starts a comment, and a
// lone '.' holds every signal for one tick. Signals keep their last
// assigned value until reassigned, are unknown before their first
// assignment, and presetn defaults to deasserted (high).
//
//	presetn=1 psel=0 penable=0 pready=0
//	psel=1 penable=0 pwrite=1 paddr=0x10 pwdata=0xd00d pstrb=0xf
//	penable=1 pready=1
//	psel=0 penable=0
type Reader struct {
	Config apb.Config

	current apb.BusSample
}

// Samples streams one BusSample per trace line. Parsing stops at the
// first malformed line, which is yielded as the final error.
func (rd *Reader) Samples(file io.Reader) iter.Seq2[apb.BusSample, error] {
	return func(yield func(apb.BusSample, error) bool) {
		err := rd.Config.Validate()
		if err != nil {
			yield(apb.BusSample{}, err)
			return
		}

		scanner := bufio.NewScanner(file)
		lineno := 0
		for scanner.Scan() {
			lineno++
			line := scanner.Text()

			text, _, _ := strings.Cut(line, "#")
			fields := strings.Fields(text)
			if len(fields) == 0 {
				continue
			}

			for _, token := range fields {
				if token == "." {
					continue
				}
				err = rd.assign(token)
				if err != nil {
					yield(apb.BusSample{}, &ErrSyntax{LineNo: lineno, Line: line, Err: err})
					return
				}
			}

			if !yield(rd.current, nil) {
				return
			}
		}

		err = scanner.Err()
		if err != nil {
			yield(apb.BusSample{}, err)
		}
	}
}

// Parse collects an entire trace.
func (rd *Reader) Parse(file io.Reader) (samples []apb.BusSample, err error) {
	for sample, serr := range rd.Samples(file) {
		if serr != nil {
			err = serr
			return
		}
		samples = append(samples, sample)
	}

	return
}

func (rd *Reader) assign(token string) (err error) {
	name, value, found := strings.Cut(token, "=")
	if !found {
		err = ErrTokenSyntax
		return
	}

	return rd.set(name, value)
}

// set assigns one signal by its APB name.
func (rd *Reader) set(name string, value string) (err error) {
	cur := &rd.current

	switch name {
	case "presetn":
		var level bool
		level, err = parseBool(value)
		cur.ResetAsserted = !level
	case "paddr":
		cur.Addr, err = parseTriUint(name, value, rd.Config.AddrWidth)
	case "pprot":
		var wide apb.TriState[uint64]
		wide, err = parseTriUint(name, value, 3)
		cur.Prot = narrow8(wide)
	case "psel":
		cur.Sel, err = parseTriBool(value)
	case "penable":
		cur.Enable, err = parseTriBool(value)
	case "pwrite":
		cur.Write, err = parseTriBool(value)
	case "pwdata":
		cur.WData, err = parseTriUint(name, value, rd.Config.DataWidth)
	case "pstrb":
		var wide apb.TriState[uint64]
		wide, err = parseTriUint(name, value, rd.Config.StrobeWidth())
		cur.Strb = narrow8(wide)
	case "pready":
		cur.Ready, err = parseTriBool(value)
	case "prdata":
		cur.RData, err = parseTriUint(name, value, rd.Config.DataWidth)
	case "pslverr":
		cur.SlvErr, err = parseTriBool(value)
	default:
		err = ErrSignalInvalid(name)
	}

	return
}

func narrow8(wide apb.TriState[uint64]) (ts apb.TriState[uint8]) {
	value, known := wide.Get()
	if known {
		ts = apb.Known(uint8(value))
	}

	return
}

func parseBool(text string) (value bool, err error) {
	switch text {
	case "0":
		// false
	case "1":
		value = true
	default:
		err = ErrParseBool(text)
	}

	return
}

func parseTriBool(text string) (ts apb.TriState[bool], err error) {
	if text == "x" || text == "X" {
		return
	}

	var value bool
	value, err = parseBool(text)
	if err != nil {
		return
	}
	ts = apb.Known(value)

	return
}

func parseTriUint(name string, text string, width uint) (ts apb.TriState[uint64], err error) {
	if text == "x" || text == "X" {
		return
	}

	value, perr := strconv.ParseUint(text, 0, 64)
	if perr != nil {
		err = ErrParseNumber(text)
		return
	}

	if width < 64 && value >= uint64(1)<<width {
		err = ErrValueRange{Name: name, Value: value, Width: width}
		return
	}
	ts = apb.Known(value)

	return
}
