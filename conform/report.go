package conform

import "time"

// StageReport counts what a conformance/resolution stage did with its input.
// Rejections are routine data quality, not errors: rows are silently excluded
// and surface only through these counts. Input == Accepted + Rejected always.
type StageReport struct {
	Stage    string        `json:"stage"`
	Input    int           `json:"input"`
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
	Duration time.Duration `json:"duration"`
}

func newReport(stage string, input int) StageReport {
	return StageReport{Stage: stage, Input: input}
}

// close derives the accepted count once all rejections are recorded.
func (r *StageReport) close() {
	r.Accepted = r.Input - r.Rejected
}
