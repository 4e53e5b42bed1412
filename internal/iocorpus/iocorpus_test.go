package iocorpus_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/internal/iocorpus"
	"github.com/ichinichi/meigen/internal/iotesting"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/errcode"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var threeRecords = []string{
	"1. 「宿題は帰ったらすぐ」\n発言者: 山田先生\nカテゴリ: 習慣形成\n",
	"2. 「失敗から学ぶ」\n発言者: 佐藤先生\nカテゴリ: その他\n",
	"3. 「仲間を信じる」\n発言者: 生徒会長\nカテゴリ: その他\n",
}

func ids(qs []quote.Quote) []int {
	res := make([]int, len(qs))
	for i := range qs {
		res[i] = qs[i].ID
	}
	return res
}

func TestParseMissingFile(t *testing.T) {
	cfg := iotesting.Config(t)
	c := iocorpus.New(cfg)

	_, err := c.Parse(false)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CorpusFileNotFoundError, gnErr.Code)
}

func TestParseIncremental(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File, threeRecords...)

	c := iocorpus.New(cfg)
	qs, err := c.Parse(false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(qs))

	st := c.State()
	assert.Equal(t, 3, st.LastProcessedID)
	assert.Equal(t, 3, st.TotalQuotes)
	require.NotNil(t, st.LastUpdate)

	t.Run("second parse returns nothing new", func(t *testing.T) {
		qs, err := c.Parse(false)
		require.NoError(t, err)
		assert.Empty(t, qs)
		assert.Len(t, c.Quotes(), 3)
	})

	t.Run("new records only", func(t *testing.T) {
		iotesting.WriteCorpus(t, cfg.Corpus.File, append(threeRecords,
			"4. 「早起きは三文の徳」\nカテゴリ: 習慣形成\n")...)
		qs, err := c.Parse(false)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, ids(qs))
		assert.Equal(t, 4, c.State().LastProcessedID)
	})

	t.Run("restart keeps the threshold", func(t *testing.T) {
		c2 := iocorpus.New(cfg)
		qs, err := c2.Parse(false)
		require.NoError(t, err)
		assert.Empty(t, qs)
		assert.Len(t, c2.Quotes(), 4)
	})

	t.Run("process all", func(t *testing.T) {
		qs1, err := c.Parse(true)
		require.NoError(t, err)
		qs2, err := c.Parse(true)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, ids(qs1))
		assert.Equal(t, qs1, qs2)
	})
}

func TestParseLastProcessedNeverDecreases(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File, threeRecords...)

	c := iocorpus.New(cfg)
	_, err := c.Parse(false)
	require.NoError(t, err)

	iotesting.WriteCorpus(t, cfg.Corpus.File, threeRecords[0])
	_, err = c.Parse(true)
	require.NoError(t, err)
	assert.Equal(t, 3, c.State().LastProcessedID)
}

func TestParseSkipsMalformed(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File,
		"1. 「一」\n",
		"見出しのみ\n",
		"5. 「X」",
		"1. 「重複」\n",
	)

	c := iocorpus.New(cfg)
	qs, err := c.Parse(false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, ids(qs))

	q, ok := c.Find(5)
	require.True(t, ok)
	assert.Equal(t, "不明", q.Speaker)
	assert.Equal(t, "その他", q.Category)
	assert.Equal(t, quote.PriorityMedium, q.Priority)

	q, ok = c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "一", q.Quote)
}

func TestRotationThreeRecords(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File, threeRecords...)

	c := iocorpus.New(cfg)
	_, err := c.Parse(false)
	require.NoError(t, err)

	q, ok := rotation.Next(c.Unpublished(), "")
	require.True(t, ok)
	assert.Equal(t, 1, q.ID)

	require.NoError(t, c.MarkPublished(1, 10))
	q, ok = rotation.Next(c.Unpublished(), "")
	require.True(t, ok)
	assert.Equal(t, 2, q.ID)

	require.NoError(t, c.MarkPublished(2, 11))
	require.NoError(t, c.MarkPublished(3, 12))
	_, ok = rotation.Next(c.Unpublished(), "")
	assert.False(t, ok)
	assert.Equal(t, 3, c.State().PublishedCount)
}

func TestMarkPublished(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File, threeRecords...)

	c := iocorpus.New(cfg)
	_, err := c.Parse(false)
	require.NoError(t, err)

	require.NoError(t, c.MarkPublished(2, 10))
	q, ok := c.Find(2)
	require.True(t, ok)
	assert.True(t, q.Published)
	require.NotNil(t, q.PublishDate)
	require.NotNil(t, q.NewsletterNumber)
	assert.Equal(t, time.Now().Format(iocorpus.DateLayout), *q.PublishDate)
	assert.Equal(t, 10, *q.NewsletterNumber)
	assert.Equal(t, 1, c.State().PublishedCount)

	t.Run("second mark does not double count", func(t *testing.T) {
		require.NoError(t, c.MarkPublished(2, 11))
		q, _ := c.Find(2)
		assert.Equal(t, 10, *q.NewsletterNumber)
		assert.Equal(t, 1, c.State().PublishedCount)
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		require.NoError(t, c.MarkPublished(99, 12))
		assert.Equal(t, 1, c.State().PublishedCount)
	})

	t.Run("published flag survives restart", func(t *testing.T) {
		c2 := iocorpus.New(cfg)
		_, err := c2.Parse(false)
		require.NoError(t, err)
		q, ok := c2.Find(2)
		require.True(t, ok)
		assert.True(t, q.Published)
		assert.Equal(t, 10, *q.NewsletterNumber)
		assert.Equal(t, []int{1, 3}, ids(c2.Unpublished()))
	})
}

func TestRecordPublication(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File, threeRecords...)

	c := iocorpus.New(cfg)
	_, err := c.Parse(false)
	require.NoError(t, err)

	err = c.RecordPublication(corpus.Publication{
		ID: 3, PublishDate: "2025-06-02", NewsletterNumber: 50,
	})
	require.NoError(t, err)

	p, ok := c.State().Publication(3)
	require.True(t, ok)
	assert.Equal(t, "2025-06-02", p.PublishDate)
}

func TestQueries(t *testing.T) {
	cfg := iotesting.Config(t)
	iotesting.WriteCorpus(t, cfg.Corpus.File, append(threeRecords,
		"4. 「宿題は帰ったらすぐ」\nカテゴリ: 行事\n")...)

	c := iocorpus.New(cfg)
	_, err := c.Parse(false)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, ids(c.ByCategory("その他")))
	assert.Equal(t, []int{1}, ids(c.ByPriority(quote.PriorityHigh)))
	assert.Equal(t, []string{"その他", "習慣形成", "行事"}, c.Categories())

	q, ok := c.FindByText(" 宿題は帰ったらすぐ ")
	require.True(t, ok)
	assert.Equal(t, 1, q.ID)

	_, ok = c.FindByText("存在しない")
	assert.False(t, ok)
	_, ok = c.Find(42)
	assert.False(t, ok)
}
