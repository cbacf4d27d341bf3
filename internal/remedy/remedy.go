// Package remedy resolves failed controls and gate results into remediation
// content: gate-level executive summaries plus severity-ordered fix blocks.
package remedy

import (
	"sort"

	"github.com/ironclad-sec/netbaseline/internal/scoring"
)

// Severity is the remediation priority tier of a fix block.
type Severity string

const (
	Critical Severity = "critical"
	High     Severity = "high"
	Medium   Severity = "medium"
)

// Rank returns a sort key for severities (lower = more urgent).
func Rank(s Severity) int {
	switch s {
	case Critical:
		return 0
	case High:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// FixBlock is a static remediation record keyed by control ID. Blocks are
// read-only library content; they are never constructed from input.
type FixBlock struct {
	// Severity is the remediation tier: critical, high, or medium.
	Severity Severity `json:"severity"`
	// Gate names the owning gate ("G1".."G5"), or "" for non-gate findings.
	Gate string `json:"gate,omitempty"`
	// ControlID is the stable control identifier from the scoring engine.
	ControlID string `json:"control_id"`
	// Title is a short heading.
	Title string `json:"title"`
	// Finding states what is wrong, plainly and factually.
	Finding string `json:"finding"`
	// PolicyIntent states what should be true, vendor-agnostic.
	PolicyIntent string `json:"policy_intent"`
	// TechnicalRationale explains why it matters, briefly.
	TechnicalRationale string `json:"technical_rationale"`
	// References lists reference-standard tags.
	References []string `json:"references"`
}

// GateSummary is the executive summary emitted for a failed gate.
type GateSummary struct {
	GateID  string   `json:"gate_id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Cap     int      `json:"cap"`
	Reasons []string `json:"reasons"`
}

// Output is the resolver's sole result.
type Output struct {
	GateSummaries    []GateSummary `json:"gate_summaries"`
	CriticalFixes    []FixBlock    `json:"critical_fixes"`
	RecommendedFixes []FixBlock    `json:"recommended_fixes"`
}

// Resolve maps the engine's failed controls and gate results to remediation
// content. Unknown control IDs are dropped silently (the library may lag
// behind newly added rules); unknown gate IDs fall back to a bare-ID
// summary. Resolve never fails.
func Resolve(failedControls []string, gates []scoring.GateResult) Output {
	var out Output

	for _, g := range gates {
		if !g.Failed {
			continue
		}
		title, summary := gateText(g.GateID)
		out.GateSummaries = append(out.GateSummaries, GateSummary{
			GateID:  g.GateID,
			Title:   title,
			Summary: summary,
			Cap:     g.Cap,
			Reasons: g.Reasons,
		})
	}

	// Dedup by control ID, first occurrence wins.
	seen := make(map[string]bool)
	var blocks []FixBlock
	for _, cid := range failedControls {
		if seen[cid] {
			continue
		}
		seen[cid] = true
		if b, ok := fixLibrary[cid]; ok {
			blocks = append(blocks, b)
		}
	}

	sortBlocks(blocks)

	for _, b := range blocks {
		if b.Severity == Critical || b.Severity == High {
			out.CriticalFixes = append(out.CriticalFixes, b)
		} else {
			out.RecommendedFixes = append(out.RecommendedFixes, b)
		}
	}

	return out
}

// sortBlocks orders fix blocks by severity rank, then gate association
// (gate-owned first), then control ID as the deterministic tie-break.
func sortBlocks(blocks []FixBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		si, sj := Rank(blocks[i].Severity), Rank(blocks[j].Severity)
		if si != sj {
			return si < sj
		}
		gi, gj := gateRank(blocks[i].Gate), gateRank(blocks[j].Gate)
		if gi != gj {
			return gi < gj
		}
		return blocks[i].ControlID < blocks[j].ControlID
	})
}

// gateRank returns 0 for blocks owned by a recognized gate, 1 otherwise.
func gateRank(gate string) int {
	if _, ok := gateSummaries[gate]; ok {
		return 0
	}
	return 1
}

// Lookup returns the fix block for a control ID, if the library has one.
func Lookup(controlID string) (FixBlock, bool) {
	b, ok := fixLibrary[controlID]
	return b, ok
}

// Library returns all fix blocks sorted by control ID.
func Library() []FixBlock {
	blocks := make([]FixBlock, 0, len(fixLibrary))
	for _, b := range fixLibrary {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].ControlID < blocks[j].ControlID
	})
	return blocks
}

// gateText returns the static title and summary for a gate, falling back to
// the bare ID and an empty summary for unrecognized gates.
func gateText(gateID string) (title, summary string) {
	if t, ok := gateSummaries[gateID]; ok {
		return t.title, t.summary
	}
	return gateID, ""
}
