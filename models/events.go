package models

import "time"

// LedgerEventType is the type of a published ledger event
type LedgerEventType string

const (
	EventComplaintFiled LedgerEventType = "complaint_filed"
	EventStatusChanged  LedgerEventType = "status_changed"
)

// LedgerEvent is published when a complaint is filed or its derived state advances
type LedgerEvent struct {
	Type        LedgerEventType `json:"type"`
	ComplaintID string          `json:"complaint_id"`
	Status      ComplaintStatus `json:"status"`
	OldStatus   ComplaintStatus `json:"old_status,omitempty"`
	Aqi         float64         `json:"aqi"`
	Authorities []string        `json:"authorities,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
