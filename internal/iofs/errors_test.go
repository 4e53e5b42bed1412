package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		msg   string
		err   error
		code  gn.ErrorCode
		path  string
		inner string
	}{
		{
			"create dir",
			CreateDirError("/home/sato/.local/share/meigen", cause),
			errcode.CreateDirError,
			"/home/sato/.local/share/meigen",
			"cannot create directory",
		},
		{
			"copy config",
			CopyFileError("/home/sato/.config/meigen/config.yaml", cause),
			errcode.CopyFileError,
			"/home/sato/.config/meigen/config.yaml",
			"cannot copy config",
		},
		{
			"read config",
			ReadFileError("/home/sato/.config/meigen/config.yaml", cause),
			errcode.ReadFileError,
			"/home/sato/.config/meigen/config.yaml",
			"cannot read",
		},
		{
			"write file",
			WriteFileError("/home/sato/.local/share/meigen/meigen_meta.json", cause),
			errcode.WriteFileError,
			"/home/sato/.local/share/meigen/meigen_meta.json",
			"cannot write",
		},
	}

	for _, v := range tests {
		var gnErr *gn.Error
		require.True(t, errors.As(v.err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "<em>%s</em>", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, v.path, gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.inner, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.path, v.msg)
	}
}

func TestWriteAtomicError(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of the target makes the final rename fail
	err := WriteAtomic(dir, []byte("{}"))
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.WriteFileError, gnErr.Code)
}
