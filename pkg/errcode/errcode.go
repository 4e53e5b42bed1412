package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Corpus errors
	CorpusFileNotFoundError
	CorpusReadError

	// Ledger errors
	LedgerCorruptError
	LedgerSaveError

	// Schedule errors
	ScheduleCorruptError
	ScheduleSaveError
	ScheduleDateError

	// Feature errors
	TranscriptReadError

	// Export errors
	ExportFormatError
	ExportWriteError
	ExportReadError

	// Metrics errors
	MetricsWriteError
)
