package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the lifecycle state of a report.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusAssigned  Status = "assigned"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Urgency is the submitter-declared priority hint. It does not drive
// lifecycle transitions.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// Location is the geotag attached to a report. Latitude and longitude are
// both required; accuracy and capture timestamp are optional.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude" example:"40.71"`
	Longitude float64 `bson:"longitude" json:"longitude" example:"-74.00"`
	Accuracy  float64 `bson:"accuracy,omitempty" json:"accuracy,omitempty" example:"12.5"`
	Timestamp string  `bson:"timestamp,omitempty" json:"timestamp,omitempty" example:"2023-01-01T00:00:00Z"`
}

// Report is a submitted waste complaint with its lifecycle state.
// @Description Waste report with contact info, geotag, attachments, and status
type Report struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId" example:"507f1f77bcf86cd799439011"`
	Name           string             `bson:"name" json:"name" example:"Jane Doe"`
	Email          string             `bson:"email" json:"email" example:"jane@example.com"`
	Phone          string             `bson:"phone" json:"phone" example:"+14155550100"`
	WasteType      string             `bson:"wasteType" json:"wasteType" example:"Organic Waste"`
	Description    string             `bson:"description" json:"description" example:"Overflowing bin near the park entrance"`
	Urgency        Urgency            `bson:"urgency" json:"urgency" example:"normal" enums:"low,normal,high,urgent"`
	Location       Location           `bson:"location" json:"location"`
	Images         []string           `bson:"images" json:"images"`
	Status         Status             `bson:"status" json:"status" example:"pending" enums:"pending,approved,assigned,completed,rejected"`
	AssignedTruck  string             `bson:"assignedTruck" json:"assignedTruck" example:"TRK-07"`
	AssignedDriver string             `bson:"assignedDriver" json:"assignedDriver" example:"D. Okafor"`
	AdminNotes     string             `bson:"adminNotes" json:"adminNotes" example:"Scheduled for Tuesday pickup"`
	Verified       bool               `bson:"verified" json:"verified" example:"false"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt" example:"2023-01-01T00:00:00Z"`
}

// Reporter is the minimal owner identity joined onto administrator views.
type Reporter struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// AdminReport is a report with its owner identity attached.
type AdminReport struct {
	Report   `bson:",inline"`
	Reporter *Reporter `bson:"reporter,omitempty" json:"reporter,omitempty"`
}

// CreateLocation is the wire form of a location in a create request.
// Pointers distinguish "absent" from zero coordinates; a partial location
// is invalid.
type CreateLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  float64  `json:"accuracy,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// UpdateStatusRequest carries an administrator's partial update. Only
// non-nil fields are written; an explicitly supplied empty string is a
// legal value (it clears the field).
// @Description Partial status/assignment update, merge semantics
type UpdateStatusRequest struct {
	Status         *Status `json:"status,omitempty" enums:"pending,approved,assigned,completed,rejected"`
	AssignedTruck  *string `json:"assignedTruck,omitempty" example:"TRK-07"`
	AssignedDriver *string `json:"assignedDriver,omitempty" example:"D. Okafor"`
	AdminNotes     *string `json:"adminNotes,omitempty" example:"Scheduled for Tuesday pickup"`
}

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusAssigned, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ValidUrgency reports whether u is a member of the urgency enum.
func ValidUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}
