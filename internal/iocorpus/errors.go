package iocorpus

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/errcode"
)

func CorpusFileNotFoundError(path string, err error) error {
	msg := "Corpus file <em>%s</em> does not exist"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CorpusFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: corpus file %s not found: %w", fn, path, err),
	}
}

func CorpusReadError(path string, err error) error {
	msg := "Cannot read corpus file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CorpusReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read corpus %s: %w", fn, path, err),
	}
}
