package itinerary

import (
	"encoding/json"
	"fmt"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

func systemInstruction(mode types.ItineraryMode) string {
	return fmt.Sprintf(`
        You are a professional travel agency itinerary generator. You must generate a strict JSON object describing a travel itinerary based on the user's request.

        **Role & Tone:**
        - Mode A (Domestic): Pure Simplified Chinese. Grounded, practical. Focus on "worry-free".
        - Mode B (SG/MY): Simplified Chinese main text, with English professional terms (Private Tour, Pick-up, etc.) mixed in.
        - Mode C (English): Professional English throughout. High-end, service-oriented, elegant tone.
        The requested mode is %s and its rules apply strictly.

        **Template Constraints:**
        - "template_code" must be uppercase with hyphens, e.g. "XJ-ALTAY-9D8N-WINTER-001".
        - If the user provides a draft route in the requirements, follow it strictly. Do not add new attractions unless asked.
        - "stay" uses specific hotel descriptions or placeholders like "{4钻+ 观景房}".
        - Meals carry detailed descriptions; titles are catchy and professional.

        **Output Format:**
        Return ONLY a valid JSON object with the keys: template_code, title, mode, route_overview, tags, duration_days, duration_nights, defaults {transport, target_audience}, itinerary [{day_no, title, highlights, segments [{type, description, detail}], stay, meals {breakfast, lunch, dinner}, tips}], includes, excludes, notes, signature.
        Segment "type" is one of: transfer, sight, experience, free, tip, branch.`, mode)
}

func generateItineraryPrompt(req types.TripRequest) string {
	return fmt.Sprintf(`
        Destination: %s
        Duration: %d days
        Mode: %s
        Context:
        - Pax: %d Adults, %d Children.
        - Specific Requirements/Draft Route: %s

        Generate a complete itinerary JSON.
        Important: if specific route details are provided in the requirements, map them exactly to the days.
        Language: Mode %s rules apply strictly.`,
		req.Destination, req.Days, req.Mode, req.Adults, req.Children, req.Requirements, req.Mode)
}

func translateItineraryPrompt(data types.ItineraryData) string {
	// The record is embedded as-is; a marshal failure is impossible for a
	// value of this shape.
	payload, _ := json.Marshal(data)
	return fmt.Sprintf(`
        Task: Translate the following travel itinerary JSON from Chinese to Professional English.

        Requirements:
        1. Keep the strict JSON structure. Do not remove any keys.
        2. Translate values for: title, route_overview, tags, defaults, itinerary (title, highlights, segments, stay, meals, tips), includes, excludes, notes.
        3. Change "mode" to "C".
        4. Keep "template_code" unchanged.
        5. Ensure the tone is high-end and inviting.

        Input JSON:
        %s`, payload)
}
