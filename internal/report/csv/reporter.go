// Package csv generates CSV assessment reports: one row per resolved fix
// block, critical fixes first.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/report"
)

func init() {
	report.Register("csv", &Reporter{})
}

// Reporter generates CSV reports.
type Reporter struct{}

// columns defines the CSV header row.
var columns = []string{
	"Severity", "Gate", "ControlID", "Title", "Finding",
	"PolicyIntent", "TechnicalRationale", "References",
}

// Generate writes a CSV report to the given writer. Rows keep the
// resolver's order: critical/high fixes first, then recommended fixes.
func (r *Reporter) Generate(w io.Writer, res *report.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	write := func(blocks []remedy.FixBlock) error {
		for _, b := range blocks {
			row := []string{
				string(b.Severity),
				b.Gate,
				b.ControlID,
				b.Title,
				b.Finding,
				b.PolicyIntent,
				b.TechnicalRationale,
				strings.Join(b.References, "; "),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
		return nil
	}

	if err := write(res.Remediation.CriticalFixes); err != nil {
		return err
	}
	return write(res.Remediation.RecommendedFixes)
}
