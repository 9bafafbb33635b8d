package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors surfaced by the itinerary engine. Handlers map these to
// HTTP statuses; everything else is treated as an internal error.
var (
	// ErrInvalidModelOutput is returned when the generative model's text,
	// after extraction, still does not decode as a JSON object.
	ErrInvalidModelOutput = errors.New("model output is not valid JSON")

	// ErrMissingAPIKey is returned when the Gemini credential is absent.
	ErrMissingAPIKey = errors.New("GOOGLE_GEMINI_API_KEY environment variable is not set")

	// ErrDayIndexOutOfRange is returned by day-list operations given a
	// position outside the list. This is a caller contract violation and is
	// never clamped silently.
	ErrDayIndexOutOfRange = errors.New("day index out of range")

	// ErrTemplateNotFound is returned when a template id has no catalog entry.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrShareLinkNotFound is returned when a share code has no stored record.
	ErrShareLinkNotFound = errors.New("share link not found")
)

// ItineraryMode selects the output language/tone of a generated document.
// A: domestic Simplified Chinese, B: mixed bilingual (SG/MY), C: English.
type ItineraryMode string

const (
	ModeDomestic  ItineraryMode = "A"
	ModeBilingual ItineraryMode = "B"
	ModeEnglish   ItineraryMode = "C"
)

// Valid reports whether m is one of the three known modes.
func (m ItineraryMode) Valid() bool {
	return m == ModeDomestic || m == ModeBilingual || m == ModeEnglish
}

// SegmentType categorises one activity within a day.
type SegmentType string

const (
	SegmentTransfer   SegmentType = "transfer"
	SegmentSight      SegmentType = "sight"
	SegmentExperience SegmentType = "experience"
	SegmentFree       SegmentType = "free"
	SegmentTip        SegmentType = "tip"
	SegmentBranch     SegmentType = "branch"
)

// Valid reports whether t is a known segment type.
func (t SegmentType) Valid() bool {
	switch t {
	case SegmentTransfer, SegmentSight, SegmentExperience, SegmentFree, SegmentTip, SegmentBranch:
		return true
	}
	return false
}

// Segment is one atomic activity/stop within a day.
type Segment struct {
	Type        SegmentType `json:"type"`
	Description string      `json:"description"`
	Detail      string      `json:"detail,omitempty"`
}

// Meals holds the per-day meal descriptions as free text. A breakfast string
// containing the 含 marker means it is bundled with the lodging.
type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// DaySchedule is one calendar day within an itinerary. DayNo always equals
// the day's 1-based position in ItineraryData.Itinerary; it is recomputed on
// every structural edit and must not be cached across mutations.
type DaySchedule struct {
	DayNo      int       `json:"day_no"`
	Title      string    `json:"title"`
	Highlights []string  `json:"highlights"`
	Segments   []Segment `json:"segments"`
	Stay       string    `json:"stay"`
	Meals      Meals     `json:"meals"`
	Tips       []string  `json:"tips"`
}

// Clone returns a deep copy of the day.
func (d DaySchedule) Clone() DaySchedule {
	out := d
	out.Highlights = append([]string(nil), d.Highlights...)
	out.Segments = append([]Segment(nil), d.Segments...)
	out.Tips = append([]string(nil), d.Tips...)
	return out
}

// ItineraryDefaults carries document-wide presentation defaults.
type ItineraryDefaults struct {
	Transport      string `json:"transport"`
	TargetAudience string `json:"target_audience"`
}

// ItineraryData is the complete client-facing trip document. Its JSON shape
// is the interchange format shared with the generative model and the
// template catalog.
//
// DurationDays and DurationNights are derived: DurationDays always equals
// len(Itinerary) and DurationNights equals max(0, DurationDays-1). They are
// recomputed from the day list on every structural edit, never trusted
// verbatim from an external source.
type ItineraryData struct {
	TemplateCode   string            `json:"template_code"`
	Title          string            `json:"title"`
	Mode           ItineraryMode     `json:"mode"`
	RouteOverview  string            `json:"route_overview"`
	Tags           []string          `json:"tags"`
	DurationDays   int               `json:"duration_days"`
	DurationNights int               `json:"duration_nights"`
	Defaults       ItineraryDefaults `json:"defaults"`
	Itinerary      []DaySchedule     `json:"itinerary"`
	Includes       []string          `json:"includes"`
	Excludes       []string          `json:"excludes"`
	Notes          []string          `json:"notes"`
	Signature      string            `json:"signature"`
}

// Clone returns a deep copy, so an edit session never aliases the committed
// snapshot it started from.
func (i ItineraryData) Clone() ItineraryData {
	out := i
	out.Tags = append([]string(nil), i.Tags...)
	out.Includes = append([]string(nil), i.Includes...)
	out.Excludes = append([]string(nil), i.Excludes...)
	out.Notes = append([]string(nil), i.Notes...)
	out.Itinerary = make([]DaySchedule, len(i.Itinerary))
	for idx, day := range i.Itinerary {
		out.Itinerary[idx] = day.Clone()
	}
	return out
}

// DepositType selects how the deposit is derived from the total.
type DepositType string

const (
	DepositPercent DepositType = "percent"
	DepositFixed   DepositType = "fixed"
)

// GuideMode selects the guide service presented in the rendered document.
type GuideMode string

const (
	GuideDriver  GuideMode = "Driver-Guide"
	GuideChinese GuideMode = "Chinese-Guide"
	GuideEnglish GuideMode = "English-Guide"
)

// TripRequest is the operator's form input: party composition, pricing and
// presentation switches. It is consumed by the pricing calculator and the
// render projection; the engine never writes it back.
type TripRequest struct {
	Destination  string        `json:"destination"`
	Days         int           `json:"days"`
	Adults       int           `json:"adults"`
	Children     int           `json:"children"`
	AdultPrice   float64       `json:"adultPrice"`
	ChildPrice   float64       `json:"childPrice"`
	Currency     string        `json:"currency"`
	Mode         ItineraryMode `json:"mode"`
	DepositType  DepositType   `json:"depositType"`
	DepositValue float64       `json:"depositValue"`

	ContactName string `json:"contactName"`
	ContactInfo string `json:"contactInfo"`

	// IncludeMeals false forces lunch/dinner to the self-arranged token at
	// render time; breakfast keeps its stored text only when marked 含.
	IncludeMeals bool      `json:"includeMeals"`
	GuideMode    GuideMode `json:"guideMode"`

	Requirements string `json:"requirements"`
}

// Pricing is the derived price breakdown. Deposit is intentionally not
// clamped to Total, so a fixed deposit larger than the total yields a
// negative balance.
type Pricing struct {
	Total   float64 `json:"total"`
	Deposit float64 `json:"deposit"`
	Balance float64 `json:"balance"`
}

// DayProjection is the read-only display view of one day: the route chain,
// the mode-adjusted meal texts and the first tip, mirroring the client
// preview layout.
type DayProjection struct {
	DayNo      int    `json:"day_no"`
	Title      string `json:"title"`
	RouteChain string `json:"route_chain"`
	Stay       string `json:"stay"`
	Meals      Meals  `json:"meals"`
	Tip        string `json:"tip,omitempty"`
}

// ItineraryExport is the debug/export view: the untouched record plus the
// computed pricing nested under a dedicated key.
type ItineraryExport struct {
	ItineraryData
	Pricing Pricing `json:"pricing"`
}

// SavedItinerary is a persisted itinerary addressable through its share code.
type SavedItinerary struct {
	ID        uuid.UUID     `json:"id"`
	ShareCode string        `json:"share_code"`
	Data      ItineraryData `json:"data"`
	CreatedAt time.Time     `json:"created_at"`
}
