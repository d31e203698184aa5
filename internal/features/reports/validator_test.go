package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

func validCreateRequest() *CreateReportRequest {
	return &CreateReportRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+14155550100",
		WasteType: "Organic Waste",
		Urgency:   "high",
		Location:  `{"latitude": 40.71, "longitude": -74.00}`,
	}
}

func TestValidateCreate(t *testing.T) {
	report, err := ValidateCreate(validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, "Organic Waste", report.WasteType)
	require.Equal(t, UrgencyHigh, report.Urgency)
	require.Equal(t, 40.71, report.Location.Latitude)
	require.Equal(t, -74.00, report.Location.Longitude)
}

func TestValidateCreate_UrgencyDefaultsToNormal(t *testing.T) {
	req := validCreateRequest()
	req.Urgency = ""

	report, err := ValidateCreate(req)
	require.NoError(t, err)
	require.Equal(t, UrgencyNormal, report.Urgency)
}

func TestValidateCreate_UnknownUrgency(t *testing.T) {
	req := validCreateRequest()
	req.Urgency = "critical"

	_, err := ValidateCreate(req)
	require.ErrorIs(t, err, pkgerrors.ErrValidation)
}

func TestValidateCreate_MissingFields(t *testing.T) {
	for _, mutate := range []func(*CreateReportRequest){
		func(r *CreateReportRequest) { r.Name = "" },
		func(r *CreateReportRequest) { r.Email = "not-an-email" },
		func(r *CreateReportRequest) { r.Phone = "abc" },
		func(r *CreateReportRequest) { r.WasteType = "  " },
		func(r *CreateReportRequest) { r.Location = "" },
	} {
		req := validCreateRequest()
		mutate(req)
		_, err := ValidateCreate(req)
		require.ErrorIs(t, err, pkgerrors.ErrValidation)
	}
}

func TestValidateCreate_PartialLocation(t *testing.T) {
	req := validCreateRequest()
	req.Location = `{"latitude": 40.71}`
	_, err := ValidateCreate(req)
	require.ErrorIs(t, err, pkgerrors.ErrValidation)

	req.Location = `{"longitude": -74.00}`
	_, err = ValidateCreate(req)
	require.ErrorIs(t, err, pkgerrors.ErrValidation)

	// Zero coordinates are legal; absent ones are not.
	req.Location = `{"latitude": 0, "longitude": 0}`
	report, err := ValidateCreate(req)
	require.NoError(t, err)
	require.Equal(t, 0.0, report.Location.Latitude)
}

func TestValidateCreate_MalformedLocation(t *testing.T) {
	req := validCreateRequest()
	req.Location = `{latitude: 40.71`

	_, err := ValidateCreate(req)
	require.ErrorIs(t, err, pkgerrors.ErrValidation)
}
