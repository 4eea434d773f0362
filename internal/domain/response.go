package domain

// LookupResult is the outcome of a flight lookup.
type LookupResult struct {
	// Mode is the lookup mode that produced this result
	Mode LookupMode `json:"-"`

	// Flights holds the normalized flights in upstream order
	Flights []DisplayFlight `json:"flights"`

	// Count is the number of flights returned
	Count int `json:"count"`
}

// NewLookupResult creates a LookupResult and sets Count from the flights.
func NewLookupResult(mode LookupMode, flights []DisplayFlight) *LookupResult {
	if flights == nil {
		flights = []DisplayFlight{}
	}
	return &LookupResult{
		Mode:    mode,
		Flights: flights,
		Count:   len(flights),
	}
}

// IsEmpty returns true if the lookup produced no flights.
func (r *LookupResult) IsEmpty() bool {
	return r == nil || len(r.Flights) == 0
}

// First returns the first flight, or nil if there is none.
func (r *LookupResult) First() *DisplayFlight {
	if r.IsEmpty() {
		return nil
	}
	return &r.Flights[0]
}
