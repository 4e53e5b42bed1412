package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/errcode"
)

func ExportFormatError(format string) error {
	msg := "Unknown export format <em>%s</em>, use json, yaml or sqlite"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown export format %q", fn, format),
	}
}

func ExportWriteError(path string, err error) error {
	msg := "Cannot write export file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write export %s: %w", fn, path, err),
	}
}

func ExportReadError(path string, err error) error {
	msg := "Cannot read export file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read export %s: %w", fn, path, err),
	}
}
