package models

import "time"

// AuditLog is one entry of the server-side audit trail.
type AuditLog struct {
	ID                   string        `json:"id"`
	PerformedBy          AuditLogActor `json:"performedBy"`
	ActionDescription    string        `json:"actionDescription"`
	AffectedResourceType string        `json:"affectedResourceType,omitempty"`
	AffectedResourceID   string        `json:"affectedResourceId,omitempty"`
	Timestamp            time.Time     `json:"timestamp"`
}

// AuditLogActor identifies the employee account behind an audited action.
type AuditLogActor struct {
	ID              string            `json:"id"`
	EmployeeAccount AuditLogActorAcct `json:"employeeAccount"`
}

type AuditLogActorAcct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	PhotoURL    string `json:"photoUrl"`
}
