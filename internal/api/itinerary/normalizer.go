package itinerary

import (
	"math"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

// defaultTemplateCode is substituted when the source carries no usable
// template_code.
const defaultTemplateCode = "XJ-CUSTOM-ITIN-001"

// NormalizeItinerary coerces an arbitrary decoded JSON value (object, array,
// scalar, nil) into a fully-populated ItineraryData. It is total and
// idempotent: it never fails, every missing or wrong-typed field is replaced
// by its documented default, and normalizing an already-normalized record
// yields an equal record. The input is never mutated; the result is a fresh,
// fully-owned value.
func NormalizeItinerary(v any) types.ItineraryData {
	obj := asObject(v)

	out := types.ItineraryData{
		TemplateCode:  stringOr(obj["template_code"], defaultTemplateCode),
		Title:         stringOr(obj["title"], ""),
		RouteOverview: stringOr(obj["route_overview"], ""),
		Tags:          stringSlice(obj["tags"]),
		Includes:      stringSlice(obj["includes"]),
		Excludes:      stringSlice(obj["excludes"]),
		Notes:         stringSlice(obj["notes"]),
		Signature:     stringOr(obj["signature"], ""),
	}

	mode := types.ItineraryMode(stringOr(obj["mode"], ""))
	if !mode.Valid() {
		mode = types.ModeDomestic
	}
	out.Mode = mode

	defaults := asObject(obj["defaults"])
	out.Defaults = types.ItineraryDefaults{
		Transport:      stringOr(defaults["transport"], ""),
		TargetAudience: stringOr(defaults["target_audience"], ""),
	}

	days, _ := obj["itinerary"].([]any)
	out.Itinerary = make([]types.DaySchedule, len(days))
	for i, raw := range days {
		out.Itinerary[i] = normalizeDay(raw, i)
	}

	if n, ok := asInt(obj["duration_days"]); ok {
		out.DurationDays = n
	} else {
		out.DurationDays = len(out.Itinerary)
	}
	if n, ok := asInt(obj["duration_nights"]); ok {
		out.DurationNights = n
	} else {
		out.DurationNights = max(0, out.DurationDays-1)
	}

	return out
}

// normalizeDay coerces one itinerary entry. Non-object entries are treated
// as empty objects so every resulting day is well-formed. idx is the entry's
// 0-based position, used as the day_no fallback.
func normalizeDay(v any, idx int) types.DaySchedule {
	obj := asObject(v)

	day := types.DaySchedule{
		Title:      stringOr(obj["title"], ""),
		Highlights: stringSlice(obj["highlights"]),
		Stay:       stringOr(obj["stay"], ""),
		Tips:       stringSlice(obj["tips"]),
	}

	if n, ok := asInt(obj["day_no"]); ok {
		day.DayNo = n
	} else {
		day.DayNo = idx + 1
	}

	segments, _ := obj["segments"].([]any)
	day.Segments = make([]types.Segment, len(segments))
	for i, raw := range segments {
		day.Segments[i] = normalizeSegment(raw)
	}

	meals := asObject(obj["meals"])
	day.Meals = types.Meals{
		Breakfast: stringOr(meals["breakfast"], ""),
		Lunch:     stringOr(meals["lunch"], ""),
		Dinner:    stringOr(meals["dinner"], ""),
	}

	return day
}

func normalizeSegment(v any) types.Segment {
	obj := asObject(v)

	segType := types.SegmentType(stringOr(obj["type"], ""))
	if !segType.Valid() {
		segType = types.SegmentSight
	}
	return types.Segment{
		Type:        segType,
		Description: stringOr(obj["description"], ""),
		Detail:      stringOr(obj["detail"], ""),
	}
}

// asObject returns v as a JSON object, or an empty (nil) map when v is
// anything else, so deep field access never dereferences a missing object.
func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

// stringOr keeps v when it is a string (empty string included), otherwise
// returns the documented default.
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// stringSlice keeps v's string elements when v is an array; any other shape
// becomes an empty sequence.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// asInt reports v as an int when it is a finite JSON number. encoding/json
// decodes numbers as float64; plain Go ints are accepted too so normalized
// values survive a second pass.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
