package models

import "time"

// ComplaintStatus is a lifecycle state. States are strictly ordered; see ComplaintLifecycle.
type ComplaintStatus string

const (
	StatusSubmitted            ComplaintStatus = "SUBMITTED"
	StatusUnderReview          ComplaintStatus = "UNDER_REVIEW"
	StatusInvestigationStarted ComplaintStatus = "INVESTIGATION_STARTED"
	StatusActionTaken          ComplaintStatus = "ACTION_TAKEN"
	StatusResolved             ComplaintStatus = "RESOLVED"
)

// ComplaintLifecycle is the canonical state sequence. No skipping, no backward transition.
var ComplaintLifecycle = []ComplaintStatus{
	StatusSubmitted,
	StatusUnderReview,
	StatusInvestigationStarted,
	StatusActionTaken,
	StatusResolved,
}

// Index returns the position of s in ComplaintLifecycle, or -1 if s is not a lifecycle state.
func (s ComplaintStatus) Index() int {
	for i, st := range ComplaintLifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

// IsValid returns true if the status is a recognized value.
func (s ComplaintStatus) IsValid() bool {
	return s.Index() >= 0
}

// UserProfile is the optional complainant profile
type UserProfile struct {
	Age              *int     `json:"age,omitempty"`
	HealthConditions []string `json:"health_conditions"`
	SensitivityLevel string   `json:"sensitivity_level"`
}

// Complainant identifies who filed a complaint
type Complainant struct {
	Type     string       `json:"type"`
	Platform string       `json:"platform"`
	Profile  *UserProfile `json:"profile"`
}

// ViolationDetails is the observation plus the legal basis captured at filing time
type ViolationDetails struct {
	Location    Location          `json:"location"`
	Aqi         float64           `json:"aqi"`
	Description *string           `json:"description"`
	SourceType  *string           `json:"source_type"`
	LegalBasis  []ViolationRecord `json:"legal_basis"`
}

// ExpectedTimeline is the promised processing schedule
type ExpectedTimeline struct {
	Acknowledgment string `json:"acknowledgment"`
	Investigation  string `json:"investigation"`
	Action         string `json:"action"`
	Resolution     string `json:"resolution"`
}

// Processing describes where a complaint was routed
type Processing struct {
	AuthoritiesNotified []string         `json:"authorities_notified"`
	ExpectedTimeline    ExpectedTimeline `json:"expected_timeline"`
	TrackingURL         string           `json:"tracking_url"`
	CaseOfficer         string           `json:"case_officer"`
}

// ImpactAnalysis is the coarse impact estimate attached at filing
type ImpactAnalysis struct {
	AffectedArea        string `json:"affected_area"`
	EstimatedPopulation int    `json:"estimated_population"`
	HealthRisk          string `json:"health_risk"`
	EnvironmentalImpact string `json:"environmental_impact"`
}

// Complaint is a filed record. Everything except Status is immutable after filing;
// Status is a cache of the last derived lifecycle state, not the source of truth.
type Complaint struct {
	ID             string           `json:"id"`
	Timestamp      time.Time        `json:"timestamp"`
	Status         ComplaintStatus  `json:"status"`
	Complainant    Complainant      `json:"complainant"`
	Violation      ViolationDetails `json:"violation"`
	Processing     Processing       `json:"processing"`
	ImpactAnalysis ImpactAnalysis   `json:"impact_analysis"`

	// HistoryOffsetHours pins the synthesized-history anchor (now - offset), drawn once at filing.
	HistoryOffsetHours int `json:"-"`
}

// FileComplaintRequest is the body of POST /complaint/file
type FileComplaintRequest struct {
	Location    Location     `json:"location"`
	Aqi         float64      `json:"aqi"`
	UserProfile *UserProfile `json:"user_profile,omitempty"`
	Description *string      `json:"description,omitempty"`
	SourceType  *string      `json:"source_type,omitempty"`
}

// FilingDetails summarises what happens next after filing
type FilingDetails struct {
	Status          string   `json:"status"`
	TrackingID      string   `json:"tracking_id"`
	ExpectedUpdates string   `json:"expected_updates"`
	NextSteps       []string `json:"next_steps"`
}

// FollowUpActions are the complainant's suggested next actions
type FollowUpActions struct {
	Immediate string `json:"immediate"`
	FollowUp  string `json:"follow_up"`
	Share     string `json:"share"`
	Escalate  string `json:"escalate"`
}

// FileComplaintResponse is returned by ComplaintService.FileComplaint
type FileComplaintResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	ComplaintID   string          `json:"complaint_id"`
	Details       FilingDetails   `json:"details"`
	LegalDocument string          `json:"legal_document"`
	Actions       FollowUpActions `json:"actions"`
	Record        *Complaint      `json:"record"`
}

// StatusUpdate is one synthesized history entry
type StatusUpdate struct {
	Timestamp time.Time       `json:"timestamp"`
	Status    ComplaintStatus `json:"status"`
	Message   string          `json:"message"`
	Authority string          `json:"authority"`
}

// ContactInfo is the static escalation contact block
type ContactInfo struct {
	NGT       string `json:"ngt"`
	CPCB      string `json:"cpcb"`
	Emergency string `json:"emergency"`
}

// ComplaintStatusResponse is returned by ComplaintService.GetComplaintStatus
type ComplaintStatusResponse struct {
	Success       bool            `json:"success"`
	ComplaintID   string          `json:"complaint_id"`
	Status        ComplaintStatus `json:"status"`
	Details       *Complaint      `json:"details"`
	Updates       []StatusUpdate  `json:"updates"`
	NextMilestone string          `json:"next_milestone"`
	Contact       ContactInfo     `json:"contact"`
}

// StatusRefreshResult is the outcome of re-deriving one complaint's state
type StatusRefreshResult struct {
	ComplaintID string          `json:"complaint_id"`
	OldStatus   ComplaintStatus `json:"old_status"`
	NewStatus   ComplaintStatus `json:"new_status"`
	Changed     bool            `json:"changed"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// AuthorityComplaintView is one row of the authority complaint list
type AuthorityComplaintView struct {
	ID            string          `json:"id"`
	FiledAt       time.Time       `json:"filed_at"`
	Status        ComplaintStatus `json:"status"`
	Aqi           float64         `json:"aqi"`
	Location      Location        `json:"location"`
	Violations    int             `json:"violations"`
	HealthRisk    string          `json:"health_risk"`
	NextMilestone string          `json:"next_milestone"`
}
