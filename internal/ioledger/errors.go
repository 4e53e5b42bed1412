package ioledger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/errcode"
)

func LedgerCorruptError(path string, err error) error {
	msg := "Ledger <em>%s</em> is corrupt, using empty state"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LedgerCorruptError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode ledger %s: %w", fn, path, err),
	}
}

func LedgerSaveError(path string, err error) error {
	msg := "Cannot save ledger to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LedgerSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save ledger %s: %w", fn, path, err),
	}
}
