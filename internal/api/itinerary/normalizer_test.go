package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

func TestNormalizeItinerary_TotalOverArbitraryInput(t *testing.T) {
	inputs := map[string]any{
		"nil":            nil,
		"string":         "not an object",
		"number":         42.0,
		"bool":           true,
		"array":          []any{1.0, "two", nil},
		"empty object":   map[string]any{},
		"wrong types":    map[string]any{"title": 3.0, "tags": "oops", "itinerary": "nope", "defaults": []any{}},
		"nan duration":   map[string]any{"duration_days": "seven"},
		"nested garbage": map[string]any{"itinerary": []any{nil, "day two", 3.0}},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			out := NormalizeItinerary(input)

			assert.NotEmpty(t, out.TemplateCode)
			assert.True(t, out.Mode.Valid())
			assert.NotNil(t, out.Tags)
			assert.NotNil(t, out.Includes)
			assert.NotNil(t, out.Excludes)
			assert.NotNil(t, out.Notes)
			assert.NotNil(t, out.Itinerary)
			for _, day := range out.Itinerary {
				assert.NotNil(t, day.Highlights)
				assert.NotNil(t, day.Segments)
				assert.NotNil(t, day.Tips)
			}
		})
	}
}

func TestNormalizeItinerary_Defaults(t *testing.T) {
	out := NormalizeItinerary(nil)

	assert.Equal(t, defaultTemplateCode, out.TemplateCode)
	assert.Equal(t, types.ModeDomestic, out.Mode)
	assert.Equal(t, "", out.Title)
	assert.Empty(t, out.Itinerary)
	assert.Equal(t, 0, out.DurationDays)
	assert.Equal(t, 0, out.DurationNights)
}

func TestNormalizeItinerary_FieldCoercion(t *testing.T) {
	input := map[string]any{
		"template_code": "XJ-TEST-001",
		"title":         "喀纳斯深度游",
		"mode":          "B",
		"tags":          []any{"冰雪", 7.0, "摄影", nil},
		"itinerary": []any{
			map[string]any{
				"title": "抵达乌鲁木齐",
				"segments": []any{
					map[string]any{"type": "transfer", "description": "接机"},
					map[string]any{"type": "bogus", "description": "市区自由活动"},
				},
				"meals": map[string]any{"breakfast": "含早", "lunch": 5.0},
				"stay":  "乌鲁木齐酒店",
			},
			map[string]any{"day_no": 9.0, "title": "第二天"},
		},
	}

	out := NormalizeItinerary(input)

	assert.Equal(t, "XJ-TEST-001", out.TemplateCode)
	assert.Equal(t, types.ModeBilingual, out.Mode)
	assert.Equal(t, []string{"冰雪", "摄影"}, out.Tags, "non-string tag elements are dropped")

	require.Len(t, out.Itinerary, 2)
	day1 := out.Itinerary[0]
	assert.Equal(t, 1, day1.DayNo, "missing day_no falls back to position")
	require.Len(t, day1.Segments, 2)
	assert.Equal(t, types.SegmentTransfer, day1.Segments[0].Type)
	assert.Equal(t, types.SegmentSight, day1.Segments[1].Type, "unknown segment type falls back to sight")
	assert.Equal(t, "含早", day1.Meals.Breakfast)
	assert.Equal(t, "", day1.Meals.Lunch, "non-string meal becomes empty")

	assert.Equal(t, 9, out.Itinerary[1].DayNo, "present day_no is kept verbatim")

	assert.Equal(t, 2, out.DurationDays, "missing duration_days falls back to list length")
	assert.Equal(t, 1, out.DurationNights)
}

func TestNormalizeItinerary_DurationFields(t *testing.T) {
	t.Run("explicit values kept", func(t *testing.T) {
		out := NormalizeItinerary(map[string]any{
			"duration_days":   6.0,
			"duration_nights": 5.0,
		})
		assert.Equal(t, 6, out.DurationDays)
		assert.Equal(t, 5, out.DurationNights)
	})

	t.Run("nights derived from days never negative", func(t *testing.T) {
		out := NormalizeItinerary(map[string]any{"itinerary": []any{}})
		assert.Equal(t, 0, out.DurationDays)
		assert.Equal(t, 0, out.DurationNights)
	})
}

func TestNormalizeItinerary_Idempotent(t *testing.T) {
	input := map[string]any{
		"title": "北疆冬季环线",
		"mode":  "A",
		"itinerary": []any{
			map[string]any{
				"title":      "抵达",
				"highlights": []any{"天池"},
				"segments":   []any{map[string]any{"type": "sight", "description": "天山天池", "detail": "含门票"}},
				"meals":      map[string]any{"breakfast": "含早", "lunch": "自理", "dinner": "特色晚餐"},
				"stay":       "天池酒店",
				"tips":       []any{"备好防寒衣物"},
			},
			"garbage entry",
		},
		"includes": []any{"全程用车", "司机服务"},
	}

	first := NormalizeItinerary(input)

	// Round-trip through JSON the way a re-submitted document would arrive.
	payload, err := json.Marshal(first)
	require.NoError(t, err)
	var decoded any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	second := NormalizeItinerary(decoded)
	assert.Equal(t, first, second)
}

func TestNormalizeItinerary_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"title":     "原始标题",
		"itinerary": []any{map[string]any{"title": "第一天"}},
	}

	out := NormalizeItinerary(input)
	out.Title = "改写标题"
	out.Itinerary[0].Title = "改写天"

	assert.Equal(t, "原始标题", input["title"])
	assert.Equal(t, "第一天", input["itinerary"].([]any)[0].(map[string]any)["title"])
}
