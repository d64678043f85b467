package trace

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/apbmon/apb"
)

// Script generates a synthetic trace from a Starlark program. The
// script must define a global 'trace': a list of dicts keyed by APB
// signal name. Values are bools or ints; the string "x" marks an
// unknown sample. Signals hold their last value between ticks, the
// same as the text format. addr_width and data_width are predeclared.
//
//	trace = [{"presetn": 1, "psel": False, "penable": False, "pready": False}]
//	for n in range(4):
//	    trace.append({"psel": True, "penable": False, "pwrite": True,
//	                  "paddr": n * 4, "pwdata": n, "pstrb": 0xf})
//	    trace.append({"penable": True, "pready": True})
//	    trace.append({"psel": False, "penable": False})
type Script struct {
	Config apb.Config

	reader Reader
}

// Run executes the script source and returns the generated trace.
// src may be nil to read filename, or a string/[]byte/io.Reader of
// program text.
func (sc *Script) Run(filename string, src any) (samples []apb.BusSample, err error) {
	err = sc.Config.Validate()
	if err != nil {
		return
	}
	sc.reader.Config = sc.Config

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"addr_width": starlark.MakeInt(int(sc.Config.AddrWidth)),
		"data_width": starlark.MakeInt(int(sc.Config.DataWidth)),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	st_trace, ok := dict["trace"]
	if !ok {
		err = ErrTraceMissing
		return
	}
	list, ok := st_trace.(*starlark.List)
	if !ok {
		err = ErrTraceMissing
		return
	}

	for n := range list.Len() {
		err = sc.tick(list.Index(n))
		if err != nil {
			err = &ErrTick{Tick: n, Err: err}
			return
		}
		samples = append(samples, sc.reader.current)
	}

	return
}

// tick applies one dict of signal assignments to the running sample.
func (sc *Script) tick(entry starlark.Value) (err error) {
	dict, ok := entry.(*starlark.Dict)
	if !ok {
		err = ErrTickInvalid
		return
	}

	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrTickInvalid
			return
		}

		var token string
		token, err = tokenOf(item[1])
		if err != nil {
			return
		}

		// Reuse the text format's per-signal parser, widths included.
		err = sc.reader.set(name, token)
		if err != nil {
			return
		}
	}

	return
}

// tokenOf renders a Starlark value into the text format's token syntax.
func tokenOf(value starlark.Value) (text string, err error) {
	switch v := value.(type) {
	case starlark.Bool:
		if bool(v) {
			text = "1"
		} else {
			text = "0"
		}
	case starlark.Int:
		text = v.String()
	case starlark.String:
		text = string(v)
	default:
		err = ErrParseValue(value.String())
	}

	return
}
