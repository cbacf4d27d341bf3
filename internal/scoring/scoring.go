// Package scoring implements the baseline risk-scoring engine.
//
// Score is a pure function from an answer set to a full breakdown: weighted
// deductions per category, five score-capping gates, a device-count
// multiplier applied to segmentation deductions only, and an A-F grade.
// It never fails; missing or unrecognized answers degrade to the
// risk-conservative interpretation and are surfaced as advisory notes.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/ironclad-sec/netbaseline/internal/answers"
)

// Gate IDs. Each gate, when failed, caps the maximum achievable score.
const (
	GatePerimeter    = "G1"
	GateGuest        = "G2"
	GateSegmentation = "G3"
	GateBackups      = "G4"
	GateLogging      = "G5"
)

// Control IDs name one specific failing condition each. They are the stable
// join key into the remediation library.
const (
	CtrlWANAdminExposure    = "CTRL_PERIMETER_WAN_ADMIN_EXPOSURE"
	CtrlPortForwarding      = "CTRL_PERIMETER_PORT_FORWARDING"
	CtrlAdminMFA            = "CTRL_IDENTITY_ADMIN_MFA"
	CtrlGuestNotIsolated    = "CTRL_SEGMENTATION_GUEST_NOT_ISOLATED"
	CtrlFlatNetwork         = "CTRL_SEGMENTATION_FLAT_NETWORK"
	CtrlPartialSegmentation = "CTRL_SEGMENTATION_PARTIAL"
	CtrlIoTWithCritical     = "CTRL_SEGMENTATION_IOT_WITH_CRITICAL"
	CtrlWifiOpen            = "CTRL_WIRELESS_OPEN_OR_UNKNOWN"
	CtrlWifiPSK             = "CTRL_WIRELESS_PSK_ONLY"
	CtrlGuestClientIso      = "CTRL_WIRELESS_GUEST_CLIENT_ISOLATION"
	CtrlUnusedPorts         = "CTRL_HYGIENE_UNUSED_PORTS"
	CtrlNoBackups           = "CTRL_OPERATIONS_NO_BACKUPS"
	CtrlNoLogging           = "CTRL_OPERATIONS_NO_LOGGING"
	CtrlFirmwareRare        = "CTRL_OPERATIONS_FIRMWARE_RARE"
)

// gateCaps are the locked maximum scores applied when a gate fails.
var gateCaps = map[string]int{
	GatePerimeter:    40,
	GateGuest:        50,
	GateSegmentation: 55,
	GateBackups:      65,
	GateLogging:      70,
}

// deviceMultipliers scale segmentation deductions by declared device count.
var deviceMultipliers = map[answers.DeviceBucket]float64{
	answers.BucketLT50:      1.0,
	answers.Bucket50To200:   1.1,
	answers.Bucket200To500:  1.25,
	answers.Bucket500To1000: 1.5,
}

// defaultMultiplier is applied when the device bucket is missing or
// unrecognized.
const defaultMultiplier = 1.1

// RequiredQuestions lists the scored questions needed for a complete
// assessment. Missing ones are reported in an advisory note and treated as
// NOT_SURE by every rule.
var RequiredQuestions = []string{
	answers.QWANAdminExposure,
	answers.QRemoteAccessMethod,
	answers.QAdminMFA,
	answers.QGuestInternalAccess,
	answers.QVLANSeparation,
	answers.QIoTWithFinance,
	answers.QCorpWifiSecurity,
	answers.QGuestClientIsolation,
	answers.QUnusedPorts,
	answers.QConfigBackups,
	answers.QLoggingExists,
	answers.QFirmwareUpdates,
}

// GateResult records the outcome of a single gate evaluation.
type GateResult struct {
	GateID  string   `json:"gate_id"`
	Failed  bool     `json:"failed"`
	Cap     int      `json:"cap"`
	Reasons []string `json:"reasons"`
}

// Deductions breaks down penalty points per category.
//
// MultipliedTotal keeps its historical name: it is
// segmentation_scaled + wireless + hygiene, and only the segmentation term
// is actually scaled by the device multiplier. Report layers depend on this
// aggregation verbatim.
type Deductions struct {
	Perimeter          int `json:"perimeter"`
	Segmentation       int `json:"segmentation"`
	SegmentationScaled int `json:"segmentation_scaled"`
	Wireless           int `json:"wireless"`
	Hygiene            int `json:"hygiene"`
	MultipliedTotal    int `json:"multiplied_total"`
	Total              int `json:"total"`
}

// Breakdown is the engine's sole output.
type Breakdown struct {
	RawScore   int    `json:"raw_score"`
	CapApplied int    `json:"cap_applied"`
	FinalScore int    `json:"final_score"`
	Grade      string `json:"grade"`

	DeviceMultiplier float64      `json:"device_multiplier"`
	Gates            []GateResult `json:"gates"`

	Deductions     Deductions `json:"deductions"`
	FailedControls []string   `json:"failed_controls"`
	Notes          []string   `json:"notes"`
}

// Grade maps a final score to its letter grade. Lower bounds are inclusive.
func Grade(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// Score evaluates an answer set and returns the full breakdown.
// It is total: any input, including nil, produces a deterministic result.
func Score(set answers.Set) Breakdown {
	var notes []string
	controls := newControlList()

	if missing := missingRequired(set); len(missing) > 0 {
		notes = append(notes,
			"Some scored questions were not answered; missing/unknown responses are treated as failing controls: "+
				strings.Join(missing, ", "))
	}

	bucket := set.DeviceBucket()
	multiplier, ok := deviceMultipliers[bucket]
	if !ok {
		multiplier = defaultMultiplier
		notes = append(notes, fmt.Sprintf("Unknown device bucket; default multiplier applied (%.1fx).", defaultMultiplier))
	}

	wanAdmin := set.YesNo(answers.QWANAdminExposure)
	remote := set.RemoteAccess()
	mfa := set.YesNo(answers.QAdminMFA)
	guest := set.YesNo(answers.QGuestInternalAccess)
	seg := set.Segmentation()
	iot := set.YesNo(answers.QIoTWithFinance)
	wifi := set.WifiSecurity()
	clientIso := set.YesNo(answers.QGuestClientIsolation)
	ports := set.YesNo(answers.QUnusedPorts)
	backups := set.Backups()
	logging := set.YesNo(answers.QLoggingExists)
	firmware := set.Firmware()

	// Gate evaluation. Gates are independent; each records every reason
	// that applies.
	var g1Reasons []string
	if wanAdmin.AssumeYes() {
		g1Reasons = append(g1Reasons, "Admin interface reachable from internet (or unknown).")
	}
	if remote.IsPortForwarding() {
		g1Reasons = append(g1Reasons, "Remote access uses port forwarding/exposed services.")
	}

	var g2Reasons []string
	if guest.AssumeYes() {
		g2Reasons = append(g2Reasons, "Guest devices can access internal systems (or unknown).")
	}

	var g3Reasons []string
	if seg.AssumeFlat() {
		g3Reasons = append(g3Reasons, "Network is flat / not segmented (or unknown).")
	}

	var g4Reasons []string
	if backups.AssumeNone() {
		g4Reasons = append(g4Reasons, "No configuration backups (or unknown).")
	}

	var g5Reasons []string
	if logging.AssumeNo() {
		g5Reasons = append(g5Reasons, "No network/firewall logging (or unknown).")
	}

	gates := []GateResult{
		{GateID: GatePerimeter, Failed: len(g1Reasons) > 0, Cap: gateCaps[GatePerimeter], Reasons: g1Reasons},
		{GateID: GateGuest, Failed: len(g2Reasons) > 0, Cap: gateCaps[GateGuest], Reasons: g2Reasons},
		{GateID: GateSegmentation, Failed: len(g3Reasons) > 0, Cap: gateCaps[GateSegmentation], Reasons: g3Reasons},
		{GateID: GateBackups, Failed: len(g4Reasons) > 0, Cap: gateCaps[GateBackups], Reasons: g4Reasons},
		{GateID: GateLogging, Failed: len(g5Reasons) > 0, Cap: gateCaps[GateLogging], Reasons: g5Reasons},
	}

	capApplied := 100
	for _, g := range gates {
		if g.Failed && g.Cap < capApplied {
			capApplied = g.Cap
		}
	}

	// Perimeter deductions (never multiplied).
	perimeter := 0
	if wanAdmin.AssumeYes() {
		perimeter += 25
		controls.add(CtrlWANAdminExposure)
	}
	if remote.IsPortForwarding() {
		perimeter += 25
		controls.add(CtrlPortForwarding)
	}
	if mfa.AssumeNo() {
		perimeter += 10
		controls.add(CtrlAdminMFA)
	}

	// Segmentation deductions (the only category the multiplier scales).
	// Flat and partial are mutually exclusive by construction.
	segmentation := 0
	if seg.AssumeFlat() {
		segmentation += 25
		controls.add(CtrlFlatNetwork)
	} else if seg.IsPartial() {
		segmentation += 10
		controls.add(CtrlPartialSegmentation)
	}

	// Guest isolation is a gate, not a deduction, but it still names a
	// control so the resolver can attach remediation content.
	if guest.AssumeYes() {
		controls.add(CtrlGuestNotIsolated)
	}

	if iot.IsYes() {
		segmentation += 10
		controls.add(CtrlIoTWithCritical)
	}

	// Wireless deductions.
	wireless := 0
	if wifi.AssumeOpen() {
		wireless += 15
		controls.add(CtrlWifiOpen)
	} else if wifi.IsPSK() {
		wireless += 7
		controls.add(CtrlWifiPSK)
	}
	if clientIso.AssumeNo() {
		wireless += 8
		controls.add(CtrlGuestClientIso)
	}

	// Hygiene and operations deductions.
	hygiene := 0
	if ports.AssumeNo() {
		hygiene += 7
		controls.add(CtrlUnusedPorts)
	}
	if backups.AssumeNone() {
		hygiene += 15
		controls.add(CtrlNoBackups)
	}
	if logging.AssumeNo() {
		hygiene += 15
		controls.add(CtrlNoLogging)
	}
	if firmware.AssumeRare() {
		hygiene += 7
		controls.add(CtrlFirmwareRare)
	}

	// Bankers' rounding (round half to even), matching the historical
	// behavior of the locked weights.
	segmentationScaled := int(math.RoundToEven(float64(segmentation) * multiplier))

	multipliedTotal := segmentationScaled + wireless + hygiene
	total := perimeter + multipliedTotal

	raw := 100 - total
	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}

	final := raw
	if capApplied < final {
		final = capApplied
	}

	return Breakdown{
		RawScore:         raw,
		CapApplied:       capApplied,
		FinalScore:       final,
		Grade:            Grade(final),
		DeviceMultiplier: multiplier,
		Gates:            gates,
		Deductions: Deductions{
			Perimeter:          perimeter,
			Segmentation:       segmentation,
			SegmentationScaled: segmentationScaled,
			Wireless:           wireless,
			Hygiene:            hygiene,
			MultipliedTotal:    multipliedTotal,
			Total:              total,
		},
		FailedControls: controls.ids,
		Notes:          notes,
	}
}

// missingRequired returns the required scored questions absent from the set,
// in RequiredQuestions order.
func missingRequired(set answers.Set) []string {
	var missing []string
	for _, qid := range RequiredQuestions {
		if !set.Has(qid) {
			missing = append(missing, qid)
		}
	}
	return missing
}

// controlList accumulates control IDs in first-seen order without
// duplicates. Output order is part of the downstream contract, so a plain
// set is not enough.
type controlList struct {
	ids  []string
	seen map[string]bool
}

func newControlList() *controlList {
	return &controlList{seen: make(map[string]bool)}
}

func (c *controlList) add(id string) {
	if c.seen[id] {
		return
	}
	c.seen[id] = true
	c.ids = append(c.ids, id)
}
