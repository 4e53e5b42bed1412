package iofeature

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/errcode"
)

func TranscriptReadError(path string, err error) error {
	msg := "Cannot read transcript file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TranscriptReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read transcript %s: %w", fn, path, err),
	}
}
