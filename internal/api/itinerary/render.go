package itinerary

import (
	"strings"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

// routeConnector joins segment descriptions into the one-line route chain.
const routeConnector = " → "

var guideLabels = map[types.GuideMode]string{
	types.GuideDriver:  "司机兼导",
	types.GuideChinese: "中文导游",
	types.GuideEnglish: "英文导游",
}

// GuideLabel maps a guide mode to its display label. Unrecognized values
// fall back to the driver-guide label rather than erroring.
func GuideLabel(mode types.GuideMode) string {
	if label, ok := guideLabels[mode]; ok {
		return label
	}
	return guideLabels[types.GuideDriver]
}

// RouteChain concatenates the day's segment descriptions in order with the
// arrow connector. An empty segment list yields an empty string.
func RouteChain(day types.DaySchedule) string {
	if len(day.Segments) == 0 {
		return ""
	}
	parts := make([]string, len(day.Segments))
	for i, seg := range day.Segments {
		parts[i] = seg.Description
	}
	return strings.Join(parts, routeConnector)
}

// ProjectMeals applies the meal-package override. With IncludeMeals the
// stored texts pass through verbatim. Without it, lunch and dinner are
// forced to the self-arranged token; breakfast keeps its stored text only
// when it carries the 含 marker, since breakfast is usually bundled with the
// lodging even when the paid-meals package is declined.
func ProjectMeals(day types.DaySchedule, req types.TripRequest) types.Meals {
	if req.IncludeMeals {
		return day.Meals
	}
	breakfast := day.Meals.Breakfast
	if !strings.Contains(breakfast, mealIncludedMarker) {
		breakfast = mealSelfArrangedToken
	}
	return types.Meals{
		Breakfast: breakfast,
		Lunch:     mealSelfArrangedToken,
		Dinner:    mealSelfArrangedToken,
	}
}

// ProjectDay computes the display view of one day without touching the
// underlying record.
func ProjectDay(day types.DaySchedule, req types.TripRequest) types.DayProjection {
	proj := types.DayProjection{
		DayNo:      day.DayNo,
		Title:      day.Title,
		RouteChain: RouteChain(day),
		Stay:       day.Stay,
		Meals:      ProjectMeals(day, req),
	}
	if len(day.Tips) > 0 {
		proj.Tip = day.Tips[0]
	}
	return proj
}

// ProjectItinerary projects every day of a record, in order.
func ProjectItinerary(data types.ItineraryData, req types.TripRequest) []types.DayProjection {
	out := make([]types.DayProjection, len(data.Itinerary))
	for i, day := range data.Itinerary {
		out[i] = ProjectDay(day, req)
	}
	return out
}
