package domain

import "time"

// EndpointStat aggregates API traffic for one (route, method) pair. Counters
// are additive: in-memory deltas merge into the persisted row on flush.
type EndpointStat struct {
	// Route is the normalized route group, e.g. "/api/products".
	Route string `json:"route"`
	// Method is the uppercase HTTP method.
	Method string `json:"method"`

	// Hits counts all requests observed for the pair.
	Hits int64 `json:"hits"`
	// Errors counts responses with status >= 400.
	Errors int64 `json:"errors"`
	// TotalDuration is the summed handler latency across Hits.
	TotalDuration time.Duration `json:"-"`

	// LastSeen is the time of the most recent request.
	LastSeen time.Time `json:"lastSeen"`
}

// AvgDuration returns the mean handler latency, or zero when no hits were
// recorded.
func (s EndpointStat) AvgDuration() time.Duration {
	if s.Hits == 0 {
		return 0
	}

	return s.TotalDuration / time.Duration(s.Hits)
}

// Merge adds other's counters into s. Route and Method are expected to match;
// LastSeen keeps the later of the two timestamps.
func (s *EndpointStat) Merge(other EndpointStat) {
	s.Hits += other.Hits
	s.Errors += other.Errors
	s.TotalDuration += other.TotalDuration
	if other.LastSeen.After(s.LastSeen) {
		s.LastSeen = other.LastSeen
	}
}
