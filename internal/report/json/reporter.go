// Package json generates JSON assessment reports.
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/report"
	"github.com/ironclad-sec/netbaseline/internal/scoring"
)

func init() {
	report.Register("json", &Reporter{})
}

// Envelope is the top-level JSON report structure.
type Envelope struct {
	Title        string            `json:"title"`
	AssessmentID string            `json:"assessment_id"`
	GeneratedAt  string            `json:"generated_at"`
	Answered     int               `json:"answered"`
	Breakdown    scoring.Breakdown `json:"breakdown"`
	Remediation  remedy.Output     `json:"remediation"`
}

// Reporter generates JSON reports.
type Reporter struct{}

// Generate writes a JSON report to the given writer.
func (r *Reporter) Generate(w io.Writer, res *report.Result) error {
	env := Envelope{
		Title:        report.Title,
		AssessmentID: res.AssessmentID,
		GeneratedAt:  res.GeneratedAt.Format(time.RFC3339),
		Answered:     res.Answered,
		Breakdown:    res.Breakdown,
		Remediation:  res.Remediation,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(env); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}
