package ioschedule

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/errcode"
)

func ScheduleCorruptError(path string, err error) error {
	msg := "Schedule <em>%s</em> is corrupt, using empty schedule"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ScheduleCorruptError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode schedule %s: %w", fn, path, err),
	}
}

func ScheduleSaveError(path string, err error) error {
	msg := "Cannot save schedule to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ScheduleSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save schedule %s: %w", fn, path, err),
	}
}

func ScheduleDateError(date string, err error) error {
	msg := "Publish date <em>%s</em> is not in YYYY-MM-DD format"
	vars := []any{date}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ScheduleDateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad publish date %q: %w", fn, date, err),
	}
}
