package itinerary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

func testDays(titles ...string) []types.DaySchedule {
	days := make([]types.DaySchedule, len(titles))
	for i, title := range titles {
		days[i] = types.DaySchedule{
			DayNo:      i + 1,
			Title:      title,
			Highlights: []string{},
			Segments:   []types.Segment{{Type: types.SegmentSight, Description: title + "的行程"}},
			Stay:       "酒店",
			Tips:       []string{},
		}
	}
	return days
}

func dayTitles(days []types.DaySchedule) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Title
	}
	return out
}

func assertContiguous(t *testing.T, days []types.DaySchedule) {
	t.Helper()
	for i, d := range days {
		assert.Equal(t, i+1, d.DayNo, "day_no must equal 1-based position")
	}
}

func TestAppendDay(t *testing.T) {
	days := testDays("第一天", "第二天")
	out := AppendDay(days)

	require.Len(t, out, 3)
	assertContiguous(t, out)
	assert.Len(t, days, 2, "input list is untouched")

	added := out[2]
	assert.Equal(t, placeholderDayTitle, added.Title)
	assert.Equal(t, placeholderStay, added.Stay)
	require.Len(t, added.Segments, 1)
	assert.Equal(t, placeholderSegment, added.Segments[0].Description)
	assert.Equal(t, mealIncludedMarker, added.Meals.Breakfast)
	assert.Equal(t, mealSelfArrangedToken, added.Meals.Lunch)
	assert.Equal(t, mealSelfArrangedToken, added.Meals.Dinner)
}

func TestAppendDay_EmptyList(t *testing.T) {
	out := AppendDay(nil)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].DayNo)
}

func TestDeleteDay(t *testing.T) {
	t.Run("middle entry removed and rest renumbered", func(t *testing.T) {
		days := testDays("A", "B", "C", "D")
		out, err := DeleteDay(days, 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "C", "D"}, dayTitles(out))
		assertContiguous(t, out)
		assert.Len(t, days, 4, "input list is untouched")
	})

	t.Run("last entry", func(t *testing.T) {
		out, err := DeleteDay(testDays("A", "B"), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, dayTitles(out))
	})

	t.Run("out of range is rejected", func(t *testing.T) {
		for _, pos := range []int{-1, 3, 100} {
			_, err := DeleteDay(testDays("A", "B", "C"), pos)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrDayIndexOutOfRange))
		}
	})

	t.Run("empty list rejects any position", func(t *testing.T) {
		_, err := DeleteDay(nil, 0)
		assert.True(t, errors.Is(err, types.ErrDayIndexOutOfRange))
	})
}

func TestMoveDay(t *testing.T) {
	t.Run("forward move shifts intermediates by one", func(t *testing.T) {
		days := testDays("A", "B", "C", "D")
		out, err := MoveDay(days, 0, 2)
		require.NoError(t, err)

		assert.Equal(t, []string{"B", "C", "A", "D"}, dayTitles(out))
		assertContiguous(t, out)
	})

	t.Run("backward move", func(t *testing.T) {
		out, err := MoveDay(testDays("A", "B", "C", "D"), 3, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "D", "B", "C"}, dayTitles(out))
		assertContiguous(t, out)
	})

	t.Run("move to same position is identity", func(t *testing.T) {
		days := testDays("A", "B", "C")
		out, err := MoveDay(days, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, dayTitles(days), dayTitles(out))
	})

	t.Run("out of range is rejected", func(t *testing.T) {
		days := testDays("A", "B")
		for _, tc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
			_, err := MoveDay(days, tc[0], tc[1])
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrDayIndexOutOfRange))
		}
	})

	t.Run("input is untouched", func(t *testing.T) {
		days := testDays("A", "B", "C")
		_, err := MoveDay(days, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, dayTitles(days))
		assertContiguous(t, days)
	})
}

func TestApplyDays(t *testing.T) {
	data := NormalizeItinerary(map[string]any{
		"title":           "环线",
		"duration_days":   2.0,
		"duration_nights": 1.0,
		"itinerary": []any{
			map[string]any{"title": "第一天"},
			map[string]any{"title": "第二天"},
		},
	})

	edited := AppendDay(data.Itinerary)
	out := ApplyDays(data, edited)

	assert.Equal(t, 3, out.DurationDays)
	assert.Equal(t, 2, out.DurationNights)
	assertContiguous(t, out.Itinerary)

	assert.Equal(t, 2, data.DurationDays, "input record is untouched")
	assert.Len(t, data.Itinerary, 2)

	t.Run("empty list yields zero nights", func(t *testing.T) {
		out := ApplyDays(data, nil)
		assert.Equal(t, 0, out.DurationDays)
		assert.Equal(t, 0, out.DurationNights)
	})
}
