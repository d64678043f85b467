package apb

import (
	"errors"

	"github.com/ezrec/apbmon/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrAddrWidth = errors.New(f("address width invalid"))
	ErrDataWidth = errors.New(f("data width invalid"))
)
