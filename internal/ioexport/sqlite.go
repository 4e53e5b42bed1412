package ioexport

import (
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/ichinichi/meigen/internal/iofs"
	"github.com/ichinichi/meigen/pkg/quote"
	_ "modernc.org/sqlite"
)

const ddl = `
CREATE TABLE meta (
	export_id TEXT NOT NULL,
	export_date TEXT NOT NULL,
	total_count INTEGER NOT NULL
);
CREATE TABLE quotes (
	id INTEGER PRIMARY KEY,
	quote TEXT NOT NULL,
	speaker TEXT NOT NULL,
	speaker_role TEXT NOT NULL,
	category TEXT NOT NULL,
	category_tag TEXT NOT NULL,
	background TEXT NOT NULL,
	scene TEXT NOT NULL,
	educational_value TEXT NOT NULL,
	date TEXT NOT NULL,
	priority TEXT NOT NULL,
	published INTEGER NOT NULL,
	publish_date TEXT,
	newsletter_number INTEGER
);
CREATE INDEX idx_quotes_category ON quotes(category);
`

const insertQuote = `
INSERT INTO quotes (
	id, quote, speaker, speaker_role, category, category_tag, background,
	scene, educational_value, date, priority, published, publish_date,
	newsletter_number
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectQuotes = `
SELECT
	id, quote, speaker, speaker_role, category, category_tag, background,
	scene, educational_value, date, priority, published, publish_date,
	newsletter_number
FROM quotes
ORDER BY id`

// writeSQLite creates a new database at path. An existing file is replaced.
func writeSQLite(path string, exp Export, progress bool) error {
	if err := iofs.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ExportWriteError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return ExportWriteError(path, err)
	}
	defer db.Close()

	if err = insertAll(db, exp, progress); err != nil {
		return ExportWriteError(path, err)
	}
	return nil
}

func insertAll(db *sql.DB, exp Export, progress bool) error {
	if _, err := db.Exec(ddl); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO meta (export_id, export_date, total_count) VALUES (?, ?, ?)",
		exp.ExportID, exp.ExportDate.Format(time.RFC3339Nano), exp.TotalCount,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(insertQuote)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var bar *pb.ProgressBar
	if progress {
		bar = newProgressBar(len(exp.Quotes), "Exporting quotes: ")
		defer bar.Finish()
	}

	for _, q := range exp.Quotes {
		var publishDate sql.NullString
		if q.PublishDate != nil {
			publishDate = sql.NullString{String: *q.PublishDate, Valid: true}
		}
		var number sql.NullInt64
		if q.NewsletterNumber != nil {
			number = sql.NullInt64{Int64: int64(*q.NewsletterNumber), Valid: true}
		}
		_, err = stmt.Exec(
			q.ID, q.Quote, q.Speaker, q.SpeakerRole, q.Category, string(q.Tag),
			q.Background, q.Scene, q.EducationalValue, q.Date,
			string(q.Priority), q.Published, publishDate, number,
		)
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}

	return tx.Commit()
}

func readSQLite(path string) (Export, error) {
	var res Export
	if _, err := os.Stat(path); err != nil {
		return res, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return res, err
	}
	defer db.Close()

	var date string
	err = db.QueryRow(
		"SELECT export_id, export_date, total_count FROM meta",
	).Scan(&res.ExportID, &date, &res.TotalCount)
	if err != nil {
		return res, err
	}
	if res.ExportDate, err = time.Parse(time.RFC3339Nano, date); err != nil {
		return res, err
	}

	rows, err := db.Query(selectQuotes)
	if err != nil {
		return res, err
	}
	defer rows.Close()

	res.Quotes = []quote.Quote{}
	for rows.Next() {
		var q quote.Quote
		var tag, priority string
		var publishDate sql.NullString
		var number sql.NullInt64
		err = rows.Scan(
			&q.ID, &q.Quote, &q.Speaker, &q.SpeakerRole, &q.Category, &tag,
			&q.Background, &q.Scene, &q.EducationalValue, &q.Date,
			&priority, &q.Published, &publishDate, &number,
		)
		if err != nil {
			return res, err
		}
		q.Tag = quote.CategoryTag(tag)
		q.Priority = quote.Priority(priority)
		if publishDate.Valid {
			d := publishDate.String
			q.PublishDate = &d
		}
		if number.Valid {
			n := int(number.Int64)
			q.NewsletterNumber = &n
		}
		res.Quotes = append(res.Quotes, q)
	}
	return res, rows.Err()
}
