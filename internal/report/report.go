// Package report defines the shared report model and a registry of output
// formats.
//
// Each format (HTML, JSON, CSV) registers a Reporter in an init() function.
// The CLI looks formats up by name at runtime based on the --format flag.
//
// To add a new format:
//  1. Create internal/report/<format>/ with a Reporter implementation.
//  2. Call report.Register("<format>", reporter) in an init() function.
//  3. Blank-import the package in cmd/netbaseline/formats.go.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/ironclad-sec/netbaseline/internal/answers"
	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/scoring"
)

// Title is the report heading shared by all formats.
const Title = "IRONCLAD Network Baseline Assessment"

// Result bundles everything a reporter needs: the score breakdown, the
// resolved remediation content, and assessment metadata.
type Result struct {
	AssessmentID string            `json:"assessment_id"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Answered     int               `json:"answered"`
	Breakdown    scoring.Breakdown `json:"breakdown"`
	Remediation  remedy.Output     `json:"remediation"`
}

// NewResult scores the answer set, resolves remediation, and stamps the
// result with a fresh assessment ID.
func NewResult(set answers.Set) *Result {
	breakdown := scoring.Score(set)
	return &Result{
		AssessmentID: uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Answered:     len(set),
		Breakdown:    breakdown,
		Remediation:  remedy.Resolve(breakdown.FailedControls, breakdown.Gates),
	}
}
