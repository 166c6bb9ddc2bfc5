package model

import "time"

// CheckStatus represents the severity of a single check result.
type CheckStatus int

const (
	CheckOK   CheckStatus = 0
	CheckWarn CheckStatus = 1
	CheckCrit CheckStatus = 2
	CheckSkip CheckStatus = 3
)

func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckWarn:
		return "WARN"
	case CheckCrit:
		return "CRIT"
	case CheckSkip:
		return "SKIP"
	}
	return "UNKNOWN"
}

// CheckResult holds the outcome of a single health check.
type CheckResult struct {
	Category string      `json:"category"`
	Name     string      `json:"name"`
	Status   CheckStatus `json:"status"`
	Detail   string      `json:"detail"`
	Advice   string      `json:"advice,omitempty"`
}

// Report holds the full output of one run.
type Report struct {
	Timestamp   time.Time     `json:"timestamp"`
	Hostname    string        `json:"hostname"`
	Mode        string        `json:"mode"`
	Checks      []CheckResult `json:"checks"`
	WorstStatus CheckStatus   `json:"worst_status"`
}

// Add appends checks and keeps WorstStatus current. SKIP never worsens the
// overall verdict.
func (r *Report) Add(checks ...CheckResult) {
	for _, c := range checks {
		r.Checks = append(r.Checks, c)
		if c.Status < CheckSkip && c.Status > r.WorstStatus {
			r.WorstStatus = c.Status
		}
	}
}
