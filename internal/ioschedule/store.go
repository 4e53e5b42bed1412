package ioschedule

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/ichinichi/meigen/internal/iofs"
	"github.com/ichinichi/meigen/pkg/schedule"
)

// Load reads the schedule at path. Absent or corrupt files give a fresh
// state. Missing settings get their defaults.
func Load(path string) schedule.State {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Schedule not found, starting fresh", "path", path)
		return schedule.NewState()
	}
	if err != nil {
		slog.Warn("Cannot read schedule, starting fresh",
			"error", ScheduleCorruptError(path, err), "path", path)
		return schedule.NewState()
	}

	var res schedule.State
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		slog.Warn("Schedule is corrupt, starting fresh",
			"error", ScheduleCorruptError(path, err), "path", path)
		return schedule.NewState()
	}
	return withDefaults(res)
}

func withDefaults(st schedule.State) schedule.State {
	def := schedule.DefaultSettings()
	if st.NextNewsletterNumber < 1 {
		st.NextNewsletterNumber = 1
	}
	if st.Schedule == nil {
		st.Schedule = []schedule.Entry{}
	}
	if st.PublishedHistory == nil {
		st.PublishedHistory = []schedule.HistoryEntry{}
	}
	if !st.Settings.Frequency.Valid() {
		st.Settings.Frequency = def.Frequency
	}
	if st.Settings.PreferredCategories == nil {
		st.Settings.PreferredCategories = def.PreferredCategories
	}
	if st.Settings.MaxQuotesPerIssue < 1 {
		st.Settings.MaxQuotesPerIssue = def.MaxQuotesPerIssue
	}
	return st
}

// Save overwrites the schedule at path atomically.
func Save(path string, st schedule.State) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(st)
	if err != nil {
		return ScheduleSaveError(path, err)
	}
	if err = iofs.WriteAtomic(path, data); err != nil {
		return ScheduleSaveError(path, err)
	}
	return nil
}
