package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

func TestGuideLabel(t *testing.T) {
	assert.Equal(t, "司机兼导", GuideLabel(types.GuideDriver))
	assert.Equal(t, "中文导游", GuideLabel(types.GuideChinese))
	assert.Equal(t, "英文导游", GuideLabel(types.GuideEnglish))
	assert.Equal(t, "司机兼导", GuideLabel("something-else"), "unknown mode falls back to driver guide")
	assert.Equal(t, "司机兼导", GuideLabel(""))
}

func TestRouteChain(t *testing.T) {
	t.Run("joins descriptions in order", func(t *testing.T) {
		day := types.DaySchedule{Segments: []types.Segment{
			{Type: types.SegmentTransfer, Description: "乌鲁木齐"},
			{Type: types.SegmentSight, Description: "天山天池"},
			{Type: types.SegmentSight, Description: "布尔津"},
		}}
		assert.Equal(t, "乌鲁木齐 → 天山天池 → 布尔津", RouteChain(day))
	})

	t.Run("single segment has no connector", func(t *testing.T) {
		day := types.DaySchedule{Segments: []types.Segment{{Description: "自由活动"}}}
		assert.Equal(t, "自由活动", RouteChain(day))
	})

	t.Run("empty segment list", func(t *testing.T) {
		assert.Equal(t, "", RouteChain(types.DaySchedule{}))
	})
}

func TestProjectMeals(t *testing.T) {
	day := types.DaySchedule{Meals: types.Meals{
		Breakfast: "酒店含早",
		Lunch:     "社饭体验",
		Dinner:    "烤全羊晚宴",
	}}

	t.Run("meals included passes through verbatim", func(t *testing.T) {
		out := ProjectMeals(day, types.TripRequest{IncludeMeals: true})
		assert.Equal(t, day.Meals, out)
	})

	t.Run("meals excluded forces lunch and dinner to self-arranged", func(t *testing.T) {
		out := ProjectMeals(day, types.TripRequest{IncludeMeals: false})
		assert.Equal(t, "酒店含早", out.Breakfast, "breakfast with 含 marker is kept")
		assert.Equal(t, "自理", out.Lunch)
		assert.Equal(t, "自理", out.Dinner)
	})

	t.Run("breakfast without marker becomes self-arranged", func(t *testing.T) {
		noMarker := types.DaySchedule{Meals: types.Meals{Breakfast: "自助早餐"}}
		out := ProjectMeals(noMarker, types.TripRequest{IncludeMeals: false})
		assert.Equal(t, "自理", out.Breakfast)
	})
}

func TestProjectDay(t *testing.T) {
	day := types.DaySchedule{
		DayNo: 3,
		Title: "禾木村深度游",
		Segments: []types.Segment{
			{Description: "禾木观景台"},
			{Description: "白桦林"},
		},
		Stay:  "禾木山庄",
		Meals: types.Meals{Breakfast: "含早", Lunch: "自理", Dinner: "自理"},
		Tips:  []string{"日出时间约九点", "备好墨镜"},
	}

	proj := ProjectDay(day, types.TripRequest{IncludeMeals: true})

	assert.Equal(t, 3, proj.DayNo)
	assert.Equal(t, "禾木村深度游", proj.Title)
	assert.Equal(t, "禾木观景台 → 白桦林", proj.RouteChain)
	assert.Equal(t, "禾木山庄", proj.Stay)
	assert.Equal(t, "日出时间约九点", proj.Tip, "only the first tip is surfaced")

	t.Run("no tips leaves Tip empty", func(t *testing.T) {
		proj := ProjectDay(types.DaySchedule{}, types.TripRequest{})
		assert.Equal(t, "", proj.Tip)
	})
}

func TestProjectItinerary(t *testing.T) {
	data := NormalizeItinerary(map[string]any{
		"itinerary": []any{
			map[string]any{
				"title":    "第一天",
				"segments": []any{map[string]any{"description": "接机"}},
				"meals":    map[string]any{"breakfast": "含早", "lunch": "拌面", "dinner": "大盘鸡"},
			},
			map[string]any{"title": "第二天"},
		},
	})

	out := ProjectItinerary(data, types.TripRequest{IncludeMeals: false})
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].DayNo)
	assert.Equal(t, "接机", out[0].RouteChain)
	assert.Equal(t, "含早", out[0].Meals.Breakfast)
	assert.Equal(t, "自理", out[0].Meals.Lunch)
	assert.Equal(t, 2, out[1].DayNo)
	assert.Equal(t, "", out[1].RouteChain)
}
