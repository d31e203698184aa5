package reports

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/cleancity/internal/config"
	"github.com/xyz-asif/cleancity/internal/features/auth"
	"github.com/xyz-asif/cleancity/internal/middleware"
	"github.com/xyz-asif/cleancity/internal/pkg/images"
	"github.com/xyz-asif/cleancity/internal/pkg/response"
	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

// Store is what the handlers need from the report store. The Mongo
// repository is the production implementation; tests inject a fake.
type Store interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, id string) (*Report, error)
	ListByUser(ctx context.Context, userID string) ([]Report, error)
	ListAll(ctx context.Context) ([]AdminReport, error)
	UpdateFields(ctx context.Context, id string, update bson.M) (*Report, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	store Store
	cfg   *config.Config
}

func NewHandler(store Store, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrValidation),
		errors.Is(err, pkgerrors.ErrInvalidTransition),
		errors.Is(err, pkgerrors.ErrTooManyAttachments),
		errors.Is(err, pkgerrors.ErrUnsupportedMediaType):
		response.BadRequest(c, err.Error())
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		response.InternalServerError(c, "Internal server error")
	}
}

// Create godoc
// @Summary Submit a waste report
// @Description Create a report with contact info, a geotag, and up to 5 images
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Contact name"
// @Param email formData string true "Contact email"
// @Param phone formData string true "Contact phone"
// @Param wasteType formData string true "Waste category"
// @Param description formData string false "Free-text description"
// @Param urgency formData string false "low, normal, high, or urgent"
// @Param location formData string true "JSON-encoded {latitude, longitude, accuracy?, timestamp?}"
// @Param images formData file false "Up to 5 raster images, 5MB each"
// @Success 201 {object} Report
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	subject := middleware.GetSubject(c)

	var req CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	report, err := ValidateCreate(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	var uploads []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		uploads = form.File["images"]
	}

	if len(uploads) > images.MaxAttachments {
		respondError(c, pkgerrors.ErrTooManyAttachments)
		return
	}

	// Transcode before touching the store: if the caller disconnects or a
	// validation fails here, nothing is persisted.
	result, err := images.Process(c.Request.Context(), uploads)
	if err != nil {
		respondError(c, err)
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(subject.ID)
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}

	report.UserID = ownerID
	report.Images = result.Images

	if err := h.store.Create(c.Request.Context(), report); err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, report)
}

// ListAll godoc
// @Summary List all reports
// @Description Administrator view of every report, newest first, with reporter identity
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AdminReport
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /reports/admin/all [get]
func (h *Handler) ListAll(c *gin.Context) {
	results, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, results)
}

// MyReports godoc
// @Summary List the caller's reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Report
// @Failure 401 {object} response.ErrorResponse
// @Router /reports/user/my-reports [get]
func (h *Handler) MyReports(c *gin.Context) {
	subject := middleware.GetSubject(c)

	results, err := h.store.ListByUser(c.Request.Context(), subject.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, results)
}

// Get godoc
// @Summary Get a single report
// @Description Owner or administrator only. Unknown ids 404 before any ownership check.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} Report
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	subject := middleware.GetSubject(c)

	report, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if report == nil {
		response.NotFound(c, "Report not found")
		return
	}

	if subject.Role != auth.RoleAdmin && report.UserID.Hex() != subject.ID {
		response.Forbidden(c, "Not authorized to view this report")
		return
	}

	response.Success(c, report)
}

// UpdateStatus godoc
// @Summary Update report status, assignment, or notes
// @Description Administrator only. Merge semantics: only supplied fields are written.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "Partial update"
// @Success 200 {object} Report
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	report, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if report == nil {
		response.NotFound(c, "Report not found")
		return
	}

	update, err := BuildStatusUpdate(report, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.store.UpdateFields(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		response.NotFound(c, "Report not found")
		return
	}

	response.Success(c, updated)
}

// Verify godoc
// @Summary Verify a completed report
// @Description Marks the cleanup as confirmed. Only legal when status is completed; idempotent.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} Report
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/verify [put]
func (h *Handler) Verify(c *gin.Context) {
	subject := middleware.GetSubject(c)

	report, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if report == nil {
		response.NotFound(c, "Report not found")
		return
	}

	// The upstream product decision on owner-only verification is still
	// pending; the flag defaults to the historical permissive behavior.
	if h.cfg.VerifyOwnerOnly && subject.Role != auth.RoleAdmin && report.UserID.Hex() != subject.ID {
		response.Forbidden(c, "Not authorized to verify this report")
		return
	}

	update, err := BuildVerifyUpdate(report)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.store.UpdateFields(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		response.NotFound(c, "Report not found")
		return
	}

	response.Success(c, updated)
}

// Delete godoc
// @Summary Delete a report
// @Description Administrator only. Hard delete.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		respondError(c, err)
		return
	}

	response.Message(c, "Report deleted")
}
