package remedy

import (
	"reflect"
	"testing"

	"github.com/ironclad-sec/netbaseline/internal/scoring"
)

func controlIDs(blocks []FixBlock) []string {
	var ids []string
	for _, b := range blocks {
		ids = append(ids, b.ControlID)
	}
	return ids
}

func TestResolveGateSummaries(t *testing.T) {
	gates := []scoring.GateResult{
		{GateID: scoring.GateLogging, Failed: true, Cap: 70, Reasons: []string{"No network/firewall logging (or unknown)."}},
		{GateID: scoring.GatePerimeter, Failed: false, Cap: 40},
		{GateID: scoring.GateBackups, Failed: true, Cap: 65, Reasons: []string{"No configuration backups (or unknown)."}},
	}

	out := Resolve(nil, gates)

	if len(out.GateSummaries) != 2 {
		t.Fatalf("got %d gate summaries, want 2 (only failed gates)", len(out.GateSummaries))
	}
	// Input order is preserved, not severity order.
	if out.GateSummaries[0].GateID != scoring.GateLogging || out.GateSummaries[1].GateID != scoring.GateBackups {
		t.Errorf("summary order = %s, %s, want G5 then G4", out.GateSummaries[0].GateID, out.GateSummaries[1].GateID)
	}
	if out.GateSummaries[0].Title != "Logging & Visibility" {
		t.Errorf("Title = %q, want %q", out.GateSummaries[0].Title, "Logging & Visibility")
	}
	if out.GateSummaries[0].Cap != 70 {
		t.Errorf("Cap = %d, want 70", out.GateSummaries[0].Cap)
	}
	if len(out.GateSummaries[0].Reasons) != 1 {
		t.Errorf("Reasons = %v, want the engine's reason carried through", out.GateSummaries[0].Reasons)
	}
}

func TestResolveUnrecognizedGate(t *testing.T) {
	out := Resolve(nil, []scoring.GateResult{
		{GateID: "G9", Failed: true, Cap: 30},
	})

	if len(out.GateSummaries) != 1 {
		t.Fatalf("got %d gate summaries, want 1", len(out.GateSummaries))
	}
	if out.GateSummaries[0].Title != "G9" || out.GateSummaries[0].Summary != "" {
		t.Errorf("unrecognized gate should fall back to bare ID and empty summary, got %q / %q",
			out.GateSummaries[0].Title, out.GateSummaries[0].Summary)
	}
}

func TestResolveDedupAndUnknownControls(t *testing.T) {
	out := Resolve([]string{
		scoring.CtrlNoLogging,
		"CTRL_DOES_NOT_EXIST",
		scoring.CtrlNoLogging,
		scoring.CtrlWANAdminExposure,
	}, nil)

	want := []string{scoring.CtrlWANAdminExposure, scoring.CtrlNoLogging}
	if got := controlIDs(out.CriticalFixes); !reflect.DeepEqual(got, want) {
		t.Errorf("CriticalFixes = %v, want %v", got, want)
	}
	if len(out.RecommendedFixes) != 0 {
		t.Errorf("RecommendedFixes = %v, want none", controlIDs(out.RecommendedFixes))
	}
}

func TestResolveSortAndPartition(t *testing.T) {
	// Deliberately scrambled input covering every sort dimension.
	input := []string{
		scoring.CtrlFirmwareRare,    // medium, no gate
		scoring.CtrlWifiPSK,         // medium, no gate
		scoring.CtrlUnusedPorts,     // medium, no gate
		scoring.CtrlNoBackups,       // high, G4
		scoring.CtrlIoTWithCritical, // high, no gate
		scoring.CtrlAdminMFA,        // high, G1
		scoring.CtrlFlatNetwork,     // critical, G3
	}

	out := Resolve(input, nil)

	// Critical tier (critical + high): severity first, then gate-owned
	// before non-gate, then control ID.
	wantCritical := []string{
		scoring.CtrlFlatNetwork,
		scoring.CtrlAdminMFA,
		scoring.CtrlNoBackups,
		scoring.CtrlIoTWithCritical,
	}
	if got := controlIDs(out.CriticalFixes); !reflect.DeepEqual(got, wantCritical) {
		t.Errorf("CriticalFixes = %v, want %v", got, wantCritical)
	}

	wantRecommended := []string{
		scoring.CtrlUnusedPorts,
		scoring.CtrlFirmwareRare,
		scoring.CtrlWifiPSK,
	}
	if got := controlIDs(out.RecommendedFixes); !reflect.DeepEqual(got, wantRecommended) {
		t.Errorf("RecommendedFixes = %v, want %v", got, wantRecommended)
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	a := Resolve([]string{scoring.CtrlWifiOpen, scoring.CtrlNoBackups, scoring.CtrlWifiPSK}, nil)
	b := Resolve([]string{scoring.CtrlWifiPSK, scoring.CtrlWifiOpen, scoring.CtrlNoBackups}, nil)
	if !reflect.DeepEqual(a, b) {
		t.Error("fix block output must not depend on input control order")
	}
}

func TestResolveEmpty(t *testing.T) {
	out := Resolve(nil, nil)
	if len(out.GateSummaries) != 0 || len(out.CriticalFixes) != 0 || len(out.RecommendedFixes) != 0 {
		t.Errorf("empty input should resolve to empty output, got %+v", out)
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		s    Severity
		want int
	}{
		{Critical, 0},
		{High, 1},
		{Medium, 2},
		{Severity("info"), 3},
		{Severity(""), 3},
	}
	for _, tt := range tests {
		if got := Rank(tt.s); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

// TestLibraryCoversEngine verifies every control the engine can emit has
// remediation content.
func TestLibraryCoversEngine(t *testing.T) {
	engineControls := []string{
		scoring.CtrlWANAdminExposure,
		scoring.CtrlPortForwarding,
		scoring.CtrlAdminMFA,
		scoring.CtrlGuestNotIsolated,
		scoring.CtrlFlatNetwork,
		scoring.CtrlPartialSegmentation,
		scoring.CtrlIoTWithCritical,
		scoring.CtrlWifiOpen,
		scoring.CtrlWifiPSK,
		scoring.CtrlGuestClientIso,
		scoring.CtrlUnusedPorts,
		scoring.CtrlNoBackups,
		scoring.CtrlNoLogging,
		scoring.CtrlFirmwareRare,
	}

	for _, cid := range engineControls {
		b, ok := Lookup(cid)
		if !ok {
			t.Errorf("no fix block for %s", cid)
			continue
		}
		if b.ControlID != cid {
			t.Errorf("fix block for %s carries ControlID %s", cid, b.ControlID)
		}
		if b.Title == "" || b.Finding == "" || b.PolicyIntent == "" || b.TechnicalRationale == "" {
			t.Errorf("fix block for %s has empty content fields", cid)
		}
		if len(b.References) == 0 {
			t.Errorf("fix block for %s has no references", cid)
		}
		if Rank(b.Severity) == 3 {
			t.Errorf("fix block for %s has unrecognized severity %q", cid, b.Severity)
		}
	}
}

func TestLibrarySorted(t *testing.T) {
	blocks := Library()
	if len(blocks) != 14 {
		t.Fatalf("Library() returned %d blocks, want 14", len(blocks))
	}
	for i := 1; i < len(blocks); i++ {
		if blocks[i-1].ControlID >= blocks[i].ControlID {
			t.Errorf("Library() not sorted: %s before %s", blocks[i-1].ControlID, blocks[i].ControlID)
		}
	}
}
