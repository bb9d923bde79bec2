package entity

import (
	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusQualified LeadStatus = "QUALIFIED"
	LeadStatusClosed    LeadStatus = "CLOSED"
)

type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "LOW"
	LeadPriorityMedium LeadPriority = "MEDIUM"
	LeadPriorityHigh   LeadPriority = "HIGH"
)

type LeadSource string

const (
	LeadSourceWebForm  LeadSource = "WEB_FORM"
	LeadSourceReferral LeadSource = "REFERRAL"
	LeadSourcePhone    LeadSource = "PHONE"
)

type Lead struct {
	BaseNoDelete
	BrokerID   uuid.UUID    `db:"broker_id"`
	PropertyID *uuid.UUID   `db:"property_id"`
	Name       string       `db:"name"`
	Email      *string      `db:"email"`
	Phone      *string      `db:"phone"`
	Message    *string      `db:"message"`
	Status     LeadStatus   `db:"status"`
	Priority   LeadPriority `db:"priority"`
	Source     LeadSource   `db:"source"`
}
