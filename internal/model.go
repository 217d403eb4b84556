package internal

// TimezonePreference is the stored timezone choice of a single caller,
// keyed by its opaque server_id. At most one row exists per server_id.
type TimezonePreference struct {
	ServerID string `json:"server_id"`
	Timezone string `json:"timezone"`
}

// SessionTime is a session start rendered in the caller's timezone.
type SessionTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// NextRace is the response body of /next-race. Sessions the upstream
// schedule does not carry (sprint weekends drop FP2/FP3) stay nil and
// are omitted from the JSON entirely.
type NextRace struct {
	RaceName   string       `json:"race_name"`
	Race       *SessionTime `json:"race,omitempty"`
	FP1        *SessionTime `json:"fp1,omitempty"`
	FP2        *SessionTime `json:"fp2,omitempty"`
	FP3        *SessionTime `json:"fp3,omitempty"`
	Qualifying *SessionTime `json:"qualifying,omitempty"`
}

// ResultEntry is one classified finisher of the most recent race.
type ResultEntry struct {
	Position string `json:"position"`
	Driver   string `json:"driver"`
}
