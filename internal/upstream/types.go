package upstream

// The racing-data API wraps every payload in an MRData envelope:
// {"MRData": {"RaceTable": {"Races": [...]}}}. Schedule queries carry
// per-race session blocks; result queries nest a Results list per race.
// All scalar values arrive as strings.

type Envelope struct {
	MRData MRData `json:"MRData"`
}

type MRData struct {
	Series    string     `json:"series"`
	RaceTable *RaceTable `json:"RaceTable"`
}

type RaceTable struct {
	Season string `json:"season"`
	Round  string `json:"round"`
	Races  []Race `json:"Races"`
}

type Race struct {
	Season         string   `json:"season"`
	Round          string   `json:"round"`
	RaceName       string   `json:"raceName"`
	Circuit        Circuit  `json:"Circuit"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	FirstPractice  *Session `json:"FirstPractice,omitempty"`
	SecondPractice *Session `json:"SecondPractice,omitempty"`
	ThirdPractice  *Session `json:"ThirdPractice,omitempty"`
	Qualifying     *Session `json:"Qualifying,omitempty"`
	Sprint         *Session `json:"Sprint,omitempty"`
	Results        []Result `json:"Results,omitempty"`
}

type Circuit struct {
	CircuitID   string `json:"circuitId"`
	CircuitName string `json:"circuitName"`
	Location    struct {
		Locality string `json:"locality"`
		Country  string `json:"country"`
	} `json:"Location"`
}

// Session is one timed sub-event of a race weekend. Either field may be
// empty; a session only counts as held when both are present.
type Session struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Result struct {
	Position string `json:"position"`
	Points   string `json:"points"`
	Status   string `json:"status"`
	Driver   Driver `json:"Driver"`
}

type Driver struct {
	DriverID   string `json:"driverId"`
	Code       string `json:"code"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}
