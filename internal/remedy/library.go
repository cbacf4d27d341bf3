package remedy

import "github.com/ironclad-sec/netbaseline/internal/scoring"

// Reference-standard tags. Kept generic; no deep document numbers.
const (
	refCISIG1  = "CIS Controls (IG1)"
	refNISTSMB = "NIST SMB Baseline"
	refVendor  = "Vendor Best Practice"
)

var stdRefs = []string{refCISIG1, refNISTSMB, refVendor}

// gateSummaries holds the executive summary text per gate.
var gateSummaries = map[string]struct {
	title   string
	summary string
}{
	scoring.GatePerimeter: {
		title:   "Perimeter Exposure",
		summary: "Public exposure of administrative interfaces or internal services materially increases compromise risk.",
	},
	scoring.GateGuest: {
		title:   "Guest Isolation",
		summary: "Guest or untrusted devices should not have access to internal systems.",
	},
	scoring.GateSegmentation: {
		title:   "Segmentation",
		summary: "Basic segmentation is required to limit lateral movement and reduce blast radius.",
	},
	scoring.GateBackups: {
		title:   "Configuration Backups",
		summary: "Backups are necessary for recovery and operational resilience.",
	},
	scoring.GateLogging: {
		title:   "Logging & Visibility",
		summary: "Logging is necessary for troubleshooting and incident detection.",
	},
}

// fixLibrary is the canonical remediation library, one block per control ID.
var fixLibrary = map[string]FixBlock{
	scoring.CtrlWANAdminExposure: {
		Severity:  Critical,
		Gate:      scoring.GatePerimeter,
		ControlID: scoring.CtrlWANAdminExposure,
		Title:     "Restrict public access to management interfaces",
		Finding:   "Administrative login interfaces for network equipment are reachable from the public internet (or this is unknown).",
		PolicyIntent: "Administrative access to network infrastructure should be reachable only from trusted internal networks " +
			"or through a secure VPN. Public (WAN) management access should be disabled.",
		TechnicalRationale: "Publicly exposed management interfaces significantly increase the likelihood of unauthorized access " +
			"through credential attacks or software vulnerabilities.",
		References: stdRefs,
	},
	scoring.CtrlPortForwarding: {
		Severity:  Critical,
		Gate:      scoring.GatePerimeter,
		ControlID: scoring.CtrlPortForwarding,
		Title:     "Remove direct internet exposure of internal services",
		Finding:   "Remote access to internal systems is provided via port forwarding / exposed services.",
		PolicyIntent: "Remove direct internet exposure of internal services. Provide remote access using a client-to-site VPN " +
			"with strong authentication. Prefer cloud/SaaS access where possible.",
		TechnicalRationale: "Direct exposure of internal services removes a key security boundary and is a common entry point " +
			"for compromise in SMB environments.",
		References: stdRefs,
	},
	scoring.CtrlAdminMFA: {
		Severity:  High,
		Gate:      scoring.GatePerimeter,
		ControlID: scoring.CtrlAdminMFA,
		Title:     "Enforce MFA for administrative access",
		Finding:   "Multi-factor authentication (MFA) is not enforced for network administrative access (or this is unknown).",
		PolicyIntent: "Require MFA for all administrative access to firewalls, switches, Wi-Fi controllers, and management portals. " +
			"Use app-based TOTP or hardware-backed methods where supported.",
		TechnicalRationale: "MFA reduces the impact of password compromise and significantly improves the security of privileged access.",
		References:         stdRefs,
	},
	scoring.CtrlGuestNotIsolated: {
		Severity:  Critical,
		Gate:      scoring.GateGuest,
		ControlID: scoring.CtrlGuestNotIsolated,
		Title:     "Isolate guest access from internal systems",
		Finding:   "Guest/untrusted devices can access internal systems (or this is unknown).",
		PolicyIntent: "Place guest access on a dedicated network segment and enforce default-deny rules from guest to internal networks. " +
			"Allow only necessary services (e.g., DHCP/DNS) and internet-bound traffic.",
		TechnicalRationale: "Guest devices should be treated as untrusted. Isolation reduces risk and limits visibility of internal assets.",
		References:         stdRefs,
	},
	scoring.CtrlFlatNetwork: {
		Severity:  Critical,
		Gate:      scoring.GateSegmentation,
		ControlID: scoring.CtrlFlatNetwork,
		Title:     "Implement basic network segmentation",
		Finding:   "The network is flat (no meaningful segmentation), or segmentation status is unknown.",
		PolicyIntent: "Implement at least basic segmentation suitable for SMBs (e.g., Staff, Guest, IoT, and optionally Management). " +
			"Enforce inter-segment access rules via firewall/L3 controls using least privilege.",
		TechnicalRationale: "Segmentation limits lateral movement and reduces blast radius when endpoints are compromised.",
		References:         stdRefs,
	},
	scoring.CtrlPartialSegmentation: {
		Severity:  High,
		Gate:      scoring.GateSegmentation,
		ControlID: scoring.CtrlPartialSegmentation,
		Title:     "Strengthen segmentation boundaries",
		Finding:   "Segmentation exists but is partial (not all groups are separated).",
		PolicyIntent: "Complete separation for at least Staff, Guest, and IoT. Ensure inter-segment policies are explicit " +
			"and follow least privilege.",
		TechnicalRationale: "Partial segmentation can still allow unnecessary lateral movement. Clear boundaries reduce risk " +
			"and simplify policy control.",
		References: stdRefs,
	},
	scoring.CtrlIoTWithCritical: {
		Severity:  High,
		ControlID: scoring.CtrlIoTWithCritical,
		Title:     "Contain IoT/unmanaged devices",
		Finding:   "IoT/unmanaged devices share the same network as business-critical systems.",
		PolicyIntent: "Move IoT/unmanaged devices to a restricted segment and allow only explicitly required communication " +
			"to necessary internal services.",
		TechnicalRationale: "IoT devices often have weaker security controls and may not be patched regularly; containment " +
			"reduces exposure to critical systems.",
		References: stdRefs,
	},
	scoring.CtrlWifiOpen: {
		Severity:  High,
		ControlID: scoring.CtrlWifiOpen,
		Title:     "Use modern Wi-Fi security",
		Finding:   "Corporate Wi-Fi security is open/unknown.",
		PolicyIntent: "Use WPA2/WPA3 with a strong configuration. For business devices, consider WPA2/WPA3-Enterprise (802.1X) " +
			"where feasible. Ensure guest access is separate from corporate access.",
		TechnicalRationale: "Open or unknown Wi-Fi security materially increases the risk of unauthorized network access.",
		References:         stdRefs,
	},
	scoring.CtrlWifiPSK: {
		Severity:  Medium,
		ControlID: scoring.CtrlWifiPSK,
		Title:     "Harden Wi-Fi authentication and separation",
		Finding:   "Corporate Wi-Fi uses a shared password (PSK).",
		PolicyIntent: "Maintain strong PSK hygiene (rotation, unique per-site) and ensure separation between corporate and guest access. " +
			"Where feasible, adopt 802.1X (Enterprise) for managed corporate devices.",
		TechnicalRationale: "Shared passwords are harder to manage and revoke. Strong separation and tighter identity controls reduce risk.",
		References:         stdRefs,
	},
	scoring.CtrlGuestClientIso: {
		Severity:  Medium,
		ControlID: scoring.CtrlGuestClientIso,
		Title:     "Enable guest client isolation",
		Finding:   "Guest Wi-Fi client isolation is disabled or unknown.",
		PolicyIntent: "Enable guest client isolation to prevent guest devices from communicating directly with each other. " +
			"Combine this with network-level guest isolation from internal systems.",
		TechnicalRationale: "Client isolation reduces opportunistic peer-to-peer attacks and limits lateral spread on guest networks.",
		References:         stdRefs,
	},
	scoring.CtrlUnusedPorts: {
		Severity:  Medium,
		ControlID: scoring.CtrlUnusedPorts,
		Title:     "Restrict unused network ports",
		Finding:   "Unused switch ports or wall jacks are not disabled/restricted (or this is unknown).",
		PolicyIntent: "Disable unused switch ports or restrict them to a safe, non-production configuration. " +
			"Document and review active ports periodically.",
		TechnicalRationale: "Open unused ports increase risk of unauthorized physical access and rogue devices joining the network.",
		References:         stdRefs,
	},
	scoring.CtrlNoBackups: {
		Severity:  High,
		Gate:      scoring.GateBackups,
		ControlID: scoring.CtrlNoBackups,
		Title:     "Establish configuration backups",
		Finding:   "No recent configuration backups are available (or this is unknown).",
		PolicyIntent: "Maintain backups of firewall/router/switch/Wi-Fi configurations. Store backups securely off-device " +
			"and test restore procedures periodically.",
		TechnicalRationale: "Backups reduce downtime and enable fast recovery after device failure or misconfiguration.",
		References:         stdRefs,
	},
	scoring.CtrlNoLogging: {
		Severity:  High,
		Gate:      scoring.GateLogging,
		ControlID: scoring.CtrlNoLogging,
		Title:     "Enable basic logging and retention",
		Finding:   "Network/firewall logs are not stored anywhere (or this is unknown).",
		PolicyIntent: "Enable firewall/network logging and store logs locally or centrally with reasonable retention. " +
			"Ensure logs cover authentication events, configuration changes, and security-relevant traffic.",
		TechnicalRationale: "Without logs, troubleshooting and incident response are severely limited, and security events " +
			"may go undetected.",
		References: stdRefs,
	},
	scoring.CtrlFirmwareRare: {
		Severity:  Medium,
		ControlID: scoring.CtrlFirmwareRare,
		Title:     "Adopt a regular update cadence",
		Finding:   "Network device firmware/software is rarely updated (or update cadence is unknown).",
		PolicyIntent: "Adopt a regular update process appropriate for SMBs (e.g., quarterly review with urgent security " +
			"updates applied sooner). Track versions and changes.",
		TechnicalRationale: "Regular updates reduce exposure to known vulnerabilities and improve stability over time.",
		References:         stdRefs,
	},
}
