package iofeature_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ichinichi/meigen/internal/iocorpus"
	"github.com/ichinichi/meigen/internal/iofeature"
	"github.com/ichinichi/meigen/internal/ioschedule"
	"github.com/ichinichi/meigen/internal/iotesting"
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var corpusSections = []string{
	"1. 「宿題は帰ったらすぐ」\n発言者: 山田先生\n発言者属性:\n役職: 教務主任\nカテゴリ: 習慣形成\n発言場面: 保護者会\n教育的価値: 習慣の定着\n日付: 2025年6月14日\n",
	"2. 「失敗から学ぶ」\nカテゴリ: その他\n",
	"3. 「仲間を信じる」\nカテゴリ: 行事\n",
}

var transcriptSections = []string{
	"「挨拶は自分から」\n発言者: 佐藤先生\nカテゴリ: コミュニケーション\n",
	"「失敗から学ぶ」\nカテゴリ: その他\n",
}

type env struct {
	cfg    *config.Config
	corpus corpus.Corpus
	ledger schedule.Ledger
	src    newsletter.QuoteSource
}

func setup(t *testing.T, withTranscript bool) env {
	t.Helper()
	cfg := iotesting.Config(t, config.OptScheduleRecentIssues(2))
	iotesting.WriteCorpus(t, cfg.Corpus.File, corpusSections...)
	if withTranscript {
		iotesting.WriteCorpus(t, cfg.Corpus.TranscriptFile, transcriptSections...)
	}

	c := iocorpus.New(cfg)
	_, err := c.Parse(false)
	require.NoError(t, err)
	l := ioschedule.New(cfg, c)
	src, err := iofeature.New(cfg, c, l, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	return env{cfg: cfg, corpus: c, ledger: l, src: src}
}

func TestRandomQuoteCorpus(t *testing.T) {
	e := setup(t, true)

	q, ok := e.src.RandomQuote("習慣形成", true)
	require.True(t, ok)
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, "教務主任の先生", q.Teacher)
	assert.Equal(t, "保護者会で語られた言葉。習慣の定着", q.Context)

	_, ok = e.src.RandomQuote("部活", true)
	assert.False(t, ok)
}

func TestRandomQuoteAvoidsRecentCategories(t *testing.T) {
	e := setup(t, false)
	require.NoError(t, e.src.MarkPublished(1, 1))

	q, ok := e.src.RandomQuote("その他", true)
	require.True(t, ok)
	require.NoError(t, e.src.MarkPublished(q.ID, 2))

	// 習慣形成 and その他 were in the last two issues, only 行事 is left
	for range 10 {
		q, ok := e.src.RandomQuote("", true)
		require.True(t, ok)
		assert.Equal(t, 3, q.ID)
	}

	require.NoError(t, e.src.MarkPublished(3, 3))
	_, ok = e.src.RandomQuote("", true)
	assert.False(t, ok)
}

func TestRandomQuoteTranscript(t *testing.T) {
	e := setup(t, true)

	q, ok := e.src.RandomQuote("コミュニケーション", false)
	require.True(t, ok)
	assert.Equal(t, 0, q.ID)
	assert.Equal(t, "佐藤先生", q.Teacher)

	for range 10 {
		_, ok := e.src.RandomQuote("", false)
		assert.True(t, ok)
	}

	_, ok = e.src.RandomQuote("行事", false)
	assert.False(t, ok)
}

func TestMissingTranscript(t *testing.T) {
	e := setup(t, false)
	_, ok := e.src.RandomQuote("", false)
	assert.False(t, ok)
	assert.Equal(t, 3, e.src.Count())
}

func TestPublish(t *testing.T) {
	e := setup(t, true)

	t.Run("transcript quote found by text", func(t *testing.T) {
		f := quote.Featured{Quote: "失敗から学ぶ"}
		require.NoError(t, e.src.Publish(f, 5))
		q, _ := e.corpus.Find(2)
		assert.True(t, q.Published)
		assert.Len(t, e.ledger.History(), 1)
	})

	t.Run("quote outside of the corpus", func(t *testing.T) {
		f := quote.Featured{Quote: "挨拶は自分から"}
		require.NoError(t, e.src.Publish(f, 6))
		assert.Len(t, e.ledger.History(), 1)
	})

	t.Run("corpus quote", func(t *testing.T) {
		f, ok := e.src.RandomQuote("行事", true)
		require.True(t, ok)
		require.NoError(t, e.src.Publish(f, 7))
		q, _ := e.corpus.Find(3)
		assert.True(t, q.Published)
	})
}

func TestCategoriesAndCount(t *testing.T) {
	e := setup(t, true)
	assert.Equal(t,
		[]string{"その他", "コミュニケーション", "習慣形成", "行事"},
		e.src.Categories(),
	)
	assert.Equal(t, 5, e.src.Count())
}
