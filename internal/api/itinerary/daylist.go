package itinerary

import (
	"fmt"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

// Placeholder content for a freshly appended day, matching what the editor
// pre-fills before the operator types anything.
const (
	placeholderDayTitle   = "新增行程"
	placeholderSegment    = "请输入行程安排..."
	placeholderStay       = "待定"
	mealIncludedMarker    = "含"
	mealSelfArrangedToken = "自理"
)

// renumberDays rewrites day_no so that every entry carries its 1-based
// position. Called by every structural operation; callers never renumber by
// hand.
func renumberDays(days []types.DaySchedule) {
	for i := range days {
		days[i].DayNo = i + 1
	}
}

// cloneDays deep-copies a day list so operations never alias their input.
func cloneDays(days []types.DaySchedule) []types.DaySchedule {
	out := make([]types.DaySchedule, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

// AppendDay returns a new list with a placeholder day added at the end.
// The result keeps day_no contiguous 1..N.
func AppendDay(days []types.DaySchedule) []types.DaySchedule {
	out := cloneDays(days)
	out = append(out, types.DaySchedule{
		Title:      placeholderDayTitle,
		Highlights: []string{},
		Segments:   []types.Segment{{Type: types.SegmentSight, Description: placeholderSegment}},
		Stay:       placeholderStay,
		Meals: types.Meals{
			Breakfast: mealIncludedMarker,
			Lunch:     mealSelfArrangedToken,
			Dinner:    mealSelfArrangedToken,
		},
		Tips: []string{},
	})
	renumberDays(out)
	return out
}

// DeleteDay returns a new list with the entry at pos (0-based) removed and
// the remaining entries renumbered. An out-of-range pos is a caller contract
// violation and fails loudly rather than being clamped.
func DeleteDay(days []types.DaySchedule, pos int) ([]types.DaySchedule, error) {
	if pos < 0 || pos >= len(days) {
		return nil, fmt.Errorf("delete day at %d of %d: %w", pos, len(days), types.ErrDayIndexOutOfRange)
	}
	out := make([]types.DaySchedule, 0, len(days)-1)
	for i, d := range days {
		if i == pos {
			continue
		}
		out = append(out, d.Clone())
	}
	renumberDays(out)
	return out, nil
}

// MoveDay returns a new list with the entry at from reinserted at to,
// 0-based. This is a stable single-element move, not a swap: entries between
// the two positions shift by exactly one. day_no values are recomputed.
func MoveDay(days []types.DaySchedule, from, to int) ([]types.DaySchedule, error) {
	if from < 0 || from >= len(days) {
		return nil, fmt.Errorf("move day from %d of %d: %w", from, len(days), types.ErrDayIndexOutOfRange)
	}
	if to < 0 || to >= len(days) {
		return nil, fmt.Errorf("move day to %d of %d: %w", to, len(days), types.ErrDayIndexOutOfRange)
	}
	out := cloneDays(days)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := make([]types.DaySchedule, 0, len(days))
	rest = append(rest, out[:to]...)
	rest = append(rest, moved)
	rest = append(rest, out[to:]...)
	renumberDays(rest)
	return rest, nil
}

// ApplyDays commits an edited day list onto an itinerary, recomputing the
// derived duration fields from the new list length. The input itinerary is
// left untouched.
func ApplyDays(data types.ItineraryData, days []types.DaySchedule) types.ItineraryData {
	out := data.Clone()
	out.Itinerary = cloneDays(days)
	renumberDays(out.Itinerary)
	out.DurationDays = len(out.Itinerary)
	out.DurationNights = max(0, out.DurationDays-1)
	return out
}
