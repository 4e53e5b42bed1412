/*
Copyright © 2025 The meigen Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/ichinichi/meigen/internal/iocorpus"
	"github.com/ichinichi/meigen/internal/iofeature"
	"github.com/ichinichi/meigen/internal/iometrics"
	"github.com/ichinichi/meigen/internal/ioschedule"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/schedule"
)

// session wires the corpus, the schedule and metrics for one command.
type session struct {
	name    string
	start   time.Time
	corpus  corpus.Corpus
	ledger  schedule.Ledger
	metrics *iometrics.Collector

	// parsed are the records returned by the incremental parse.
	parsed []quote.Quote
}

// openSession parses the corpus and loads the schedule.
func openSession(name string) (*session, error) {
	res := &session{
		name:    name,
		start:   time.Now(),
		metrics: iometrics.New(),
	}

	res.corpus = iocorpus.New(cfg)
	parsed, err := res.corpus.Parse(cfg.ProcessAll)
	if err != nil {
		return nil, err
	}
	res.parsed = parsed
	res.ledger = ioschedule.New(cfg, res.corpus)
	return res, nil
}

// source creates the featured-quote service on top of the session.
func (s *session) source() (newsletter.QuoteSource, error) {
	return iofeature.New(cfg, s.corpus, s.ledger, nil)
}

// close writes metrics. Failures are logged, they never change the result
// of the command.
func (s *session) close(err error) {
	dur := time.Since(s.start)
	s.metrics.Observe(s.ledger.Statistics())
	s.metrics.ObserveRun(s.name, dur, err)
	if werr := s.metrics.Write(cfg.Metrics.File); werr != nil {
		slog.Warn("Cannot write metrics", "error", werr)
	}
	slog.Info("Command finished",
		"command", s.name,
		"duration", gnfmt.TimeString(dur.Seconds()),
		"success", err == nil,
	)
}
