// Package html generates self-contained HTML assessment reports.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

func init() {
	report.Register("html", &Reporter{})
}

// ReportData contains all data passed to the HTML template.
type ReportData struct {
	Title       string
	GeneratedAt string
	Result      *report.Result
	// CapNote is non-empty when a gate capped the final score.
	CapNote string
}

// Reporter generates HTML reports.
type Reporter struct{}

// Generate writes an HTML report to the given writer.
func (r *Reporter) Generate(w io.Writer, res *report.Result) error {
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"severityClass": severityClass,
		"gradeClass":    gradeClass,
	}).ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	data := ReportData{
		Title:       report.Title,
		GeneratedAt: res.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		Result:      res,
	}
	if c := res.Breakdown.CapApplied; c < 100 {
		data.CapNote = fmt.Sprintf(
			"Score cap applied due to failed security gates. Maximum possible score in current state: %d/100.", c)
	}

	return tmpl.Execute(w, data)
}

func severityClass(s remedy.Severity) string {
	switch s {
	case remedy.Critical, remedy.High, remedy.Medium:
		return string(s)
	default:
		return "unknown"
	}
}

func gradeClass(grade string) string {
	switch grade {
	case "A":
		return "grade-a"
	case "B":
		return "grade-b"
	case "C":
		return "grade-c"
	case "D":
		return "grade-d"
	case "F":
		return "grade-f"
	default:
		return ""
	}
}
