package reports

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xyz-asif/cleancity/internal/features/auth"
	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

// CreateReportRequest is the raw multipart form of a create call. Location
// arrives JSON-encoded in a single form field.
type CreateReportRequest struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	WasteType   string `form:"wasteType"`
	Description string `form:"description"`
	Urgency     string `form:"urgency"`
	Location    string `form:"location"`
}

// ValidateCreate checks the form fields and returns the report seed to
// persist. Urgency defaults to normal; a location missing either coordinate
// is rejected outright.
func ValidateCreate(req *CreateReportRequest) (*Report, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", pkgerrors.ErrValidation)
	}
	if !auth.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", pkgerrors.ErrValidation)
	}
	if !auth.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", pkgerrors.ErrValidation)
	}
	if strings.TrimSpace(req.WasteType) == "" {
		return nil, fmt.Errorf("%w: wasteType is required", pkgerrors.ErrValidation)
	}

	urgency := UrgencyNormal
	if req.Urgency != "" {
		urgency = Urgency(req.Urgency)
		if !ValidUrgency(urgency) {
			return nil, fmt.Errorf("%w: unknown urgency %q", pkgerrors.ErrValidation, req.Urgency)
		}
	}

	location, err := parseLocation(req.Location)
	if err != nil {
		return nil, err
	}

	return &Report{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		WasteType:   req.WasteType,
		Description: req.Description,
		Urgency:     urgency,
		Location:    *location,
	}, nil
}

func parseLocation(raw string) (*Location, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: location is required", pkgerrors.ErrValidation)
	}

	var loc CreateLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, fmt.Errorf("%w: malformed location", pkgerrors.ErrValidation)
	}

	if loc.Latitude == nil || loc.Longitude == nil {
		return nil, fmt.Errorf("%w: location requires both latitude and longitude", pkgerrors.ErrValidation)
	}

	return &Location{
		Latitude:  *loc.Latitude,
		Longitude: *loc.Longitude,
		Accuracy:  loc.Accuracy,
		Timestamp: loc.Timestamp,
	}, nil
}
