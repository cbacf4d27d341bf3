// Package answers defines the answer-set model for a baseline assessment.
//
// Raw answers arrive as string option keys selected in the questionnaire.
// Each scored question is parsed into a small enumerated type whose zero
// value is Unknown; any missing, NOT_SURE, or unrecognized option key folds
// to Unknown during parsing. The risk predicates on those types are the
// single place where "unknown counts as the worst answer" is encoded.
package answers

// Question IDs for the scored questionnaire.
const (
	QDeviceCount          = "A1_DEVICE_COUNT"
	QWANAdminExposure     = "C1_WAN_ADMIN_EXPOSURE"
	QRemoteAccessMethod   = "C2_REMOTE_ACCESS_METHOD"
	QAdminMFA             = "C3_ADMIN_MFA"
	QGuestInternalAccess  = "D1_GUEST_INTERNAL_ACCESS"
	QVLANSeparation       = "D2_VLAN_SEPARATION"
	QIoTWithFinance       = "D3_IOT_WITH_FINANCE"
	QCorpWifiSecurity     = "E1_CORP_WIFI_SECURITY"
	QGuestClientIsolation = "E2_GUEST_CLIENT_ISOLATION"
	QUnusedPorts          = "F1_UNUSED_PORTS_RESTRICTED"
	QConfigBackups        = "F2_CONFIG_BACKUPS"
	QLoggingExists        = "F3_LOGGING_EXISTS"
	QFirmwareUpdates      = "F4_FIRMWARE_UPDATES"
)

// Option keys shared across questions.
const (
	OptYes     = "YES"
	OptNo      = "NO"
	OptNotSure = "NOT_SURE"
)

// Option keys for single-question enumerations.
const (
	OptVPN            = "VPN"
	OptSaaSOnly       = "SAAS_ONLY"
	OptPortForwarding = "PORT_FORWARDING"

	OptFull    = "FULL"
	OptPartial = "PARTIAL"
	OptFlat    = "FLAT"

	OptEnterprise    = "ENTERPRISE"
	OptPSK           = "PSK"
	OptOpenOrUnknown = "OPEN_OR_UNKNOWN"

	OptAutomated = "AUTOMATED"
	OptManual    = "MANUAL"
	OptNone      = "NONE"

	OptRegular = "REGULAR"
	OptRare    = "RARE"

	OptLT50      = "LT_50"
	OptR50To200  = "R_50_200"
	OptR200To500 = "R_200_500"
	OptR500To1K  = "R_500_1000"
)

// Set maps question IDs to selected option keys. A nil Set is valid and
// behaves as a fully unanswered questionnaire.
type Set map[string]string

// Has reports whether the question was answered at all (any value,
// including NOT_SURE, counts as answered).
func (s Set) Has(qid string) bool {
	_, ok := s[qid]
	return ok
}

// raw returns the stored option key, or "" if the question is unanswered.
func (s Set) raw(qid string) string {
	return s[qid]
}

// TriState is a yes/no answer with an explicit Unknown variant.
type TriState uint8

const (
	TriUnknown TriState = iota
	TriYes
	TriNo
)

// AssumeYes reports whether the answer must be treated as "yes" under the
// conservative policy (an explicit yes, or unknown).
func (t TriState) AssumeYes() bool { return t == TriYes || t == TriUnknown }

// AssumeNo reports whether the answer must be treated as "no" under the
// conservative policy (an explicit no, or unknown).
func (t TriState) AssumeNo() bool { return t == TriNo || t == TriUnknown }

// IsYes reports a strict, explicit "yes". Unknown does not count.
func (t TriState) IsYes() bool { return t == TriYes }

// YesNo parses a yes/no question.
func (s Set) YesNo(qid string) TriState {
	switch s.raw(qid) {
	case OptYes:
		return TriYes
	case OptNo:
		return TriNo
	default:
		return TriUnknown
	}
}

// RemoteAccess describes how remote access into the network is provided.
type RemoteAccess uint8

const (
	RemoteUnknown RemoteAccess = iota
	RemoteVPN
	RemoteSaaSOnly
	RemotePortForwarding
)

// IsPortForwarding reports whether internal services are exposed through
// port forwarding. This rule is strict: only the explicit answer triggers.
func (r RemoteAccess) IsPortForwarding() bool { return r == RemotePortForwarding }

// RemoteAccess parses C2_REMOTE_ACCESS_METHOD.
func (s Set) RemoteAccess() RemoteAccess {
	switch s.raw(QRemoteAccessMethod) {
	case OptVPN:
		return RemoteVPN
	case OptSaaSOnly:
		return RemoteSaaSOnly
	case OptPortForwarding:
		return RemotePortForwarding
	default:
		return RemoteUnknown
	}
}

// Segmentation describes the declared VLAN separation level.
type Segmentation uint8

const (
	SegUnknown Segmentation = iota
	SegFull
	SegPartial
	SegFlat
)

// AssumeFlat reports whether the network must be treated as flat
// (declared flat, or unknown).
func (g Segmentation) AssumeFlat() bool { return g == SegFlat || g == SegUnknown }

// IsPartial reports a declared partial separation.
func (g Segmentation) IsPartial() bool { return g == SegPartial }

// Segmentation parses D2_VLAN_SEPARATION.
func (s Set) Segmentation() Segmentation {
	switch s.raw(QVLANSeparation) {
	case OptFull:
		return SegFull
	case OptPartial:
		return SegPartial
	case OptFlat:
		return SegFlat
	default:
		return SegUnknown
	}
}

// WifiSecurity describes the corporate Wi-Fi security mode.
type WifiSecurity uint8

const (
	WifiUnknown WifiSecurity = iota
	WifiEnterprise
	WifiPSK
	WifiOpen
)

// AssumeOpen reports whether corporate Wi-Fi must be treated as open
// (declared open/unknown option, or unanswered).
func (w WifiSecurity) AssumeOpen() bool { return w == WifiOpen || w == WifiUnknown }

// IsPSK reports a declared shared-password configuration.
func (w WifiSecurity) IsPSK() bool { return w == WifiPSK }

// WifiSecurity parses E1_CORP_WIFI_SECURITY.
func (s Set) WifiSecurity() WifiSecurity {
	switch s.raw(QCorpWifiSecurity) {
	case OptEnterprise:
		return WifiEnterprise
	case OptPSK:
		return WifiPSK
	case OptOpenOrUnknown:
		return WifiOpen
	default:
		return WifiUnknown
	}
}

// Backups describes the configuration backup practice.
type Backups uint8

const (
	BackupsUnknown Backups = iota
	BackupsAutomated
	BackupsManual
	BackupsNone
)

// AssumeNone reports whether backups must be treated as absent.
func (b Backups) AssumeNone() bool { return b == BackupsNone || b == BackupsUnknown }

// Backups parses F2_CONFIG_BACKUPS.
func (s Set) Backups() Backups {
	switch s.raw(QConfigBackups) {
	case OptAutomated:
		return BackupsAutomated
	case OptManual:
		return BackupsManual
	case OptNone:
		return BackupsNone
	default:
		return BackupsUnknown
	}
}

// Firmware describes the firmware update cadence.
type Firmware uint8

const (
	FirmwareUnknown Firmware = iota
	FirmwareRegular
	FirmwareRare
)

// AssumeRare reports whether updates must be treated as rare.
func (f Firmware) AssumeRare() bool { return f == FirmwareRare || f == FirmwareUnknown }

// Firmware parses F4_FIRMWARE_UPDATES.
func (s Set) Firmware() Firmware {
	switch s.raw(QFirmwareUpdates) {
	case OptRegular:
		return FirmwareRegular
	case OptRare:
		return FirmwareRare
	default:
		return FirmwareUnknown
	}
}

// DeviceBucket is the declared device-count range.
type DeviceBucket uint8

const (
	BucketUnknown DeviceBucket = iota
	BucketLT50
	Bucket50To200
	Bucket200To500
	Bucket500To1000
)

// DeviceBucket parses A1_DEVICE_COUNT.
func (s Set) DeviceBucket() DeviceBucket {
	switch s.raw(QDeviceCount) {
	case OptLT50:
		return BucketLT50
	case OptR50To200:
		return Bucket50To200
	case OptR200To500:
		return Bucket200To500
	case OptR500To1K:
		return Bucket500To1000
	default:
		return BucketUnknown
	}
}
