package quote_test

import (
	"testing"

	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/stretchr/testify/assert"
)

func TestSpeakerAttributes(t *testing.T) {
	block := "役職: 教務主任\n担当科目：数学\nメモ書き\n- 学年担当: 中学2年"
	res := quote.SpeakerAttributes(block)
	assert.Equal(t, map[string]string{
		"役職":   "教務主任",
		"担当科目": "数学",
		"学年担当": "中学2年",
	}, res)
}

func TestSpeakerRole(t *testing.T) {
	tests := []struct {
		msg     string
		speaker string
		attrs   map[string]string
		res     string
	}{
		{
			msg:     "teacher without attributes",
			speaker: "田中先生",
			res:     "先生",
		},
		{
			msg:     "teacher with all attributes",
			speaker: "田中先生",
			attrs: map[string]string{
				"役職":   "校長",
				"所属部署": "広報部",
				"担当科目": "国語",
				"学年担当": "高校3年",
			},
			res: "校長、広報部、国語担当、高校3年の先生",
		},
		{
			msg:     "student by name",
			speaker: "生徒A",
			res:     "生徒",
		},
		{
			msg:     "student by attribute with volleyball club",
			speaker: "鈴木",
			attrs: map[string]string{
				"区分": "生徒",
				"部活": "バレーボール部キャプテン",
			},
			res: "バレーボール部所属",
		},
		{
			msg:     "student with grade and swimming club",
			speaker: "生徒会長",
			attrs: map[string]string{
				"学年担当": "中学3年",
				"部活":   "水泳部",
			},
			res: "中学3年、水泳部所属",
		},
		{
			msg:     "volleyball wins over swimming",
			speaker: "生徒",
			attrs: map[string]string{
				"部活1": "水泳部",
				"部活2": "バレーボール部",
			},
			res: "バレーボール部所属",
		},
	}

	for _, v := range tests {
		res := quote.SpeakerRole(v.speaker, v.attrs)
		assert.Equal(t, v.res, res, v.msg)
	}
}
