package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/cleancity/internal/pkg/response"
	"github.com/xyz-asif/cleancity/internal/pkg/token"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Register godoc
// @Summary Register a citizen account
// @Description Create a user account and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := h.repo.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to check existing account")
		return
	}
	if existing != nil {
		response.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
	}
	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		response.InternalServerError(c, "Failed to create account")
		return
	}

	signed, err := token.GenerateToken(user.ID.Hex(), string(RoleUser))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Created(c, AuthResponse{Token: signed, User: user})
}

// Login godoc
// @Summary Login as a citizen
// @Description Authenticate a user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.repo.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to look up account")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	signed, err := token.GenerateToken(user.ID.Hex(), string(RoleUser))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{Token: signed, User: user})
}

// AdminRegister godoc
// @Summary Register an administrator account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminRegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/admin/register [post]
func (h *Handler) AdminRegister(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateAdminRegister(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := h.repo.FindAdminByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to check existing account")
		return
	}
	if existing != nil {
		response.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	admin := &Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := h.repo.CreateAdmin(c.Request.Context(), admin); err != nil {
		response.InternalServerError(c, "Failed to create account")
		return
	}

	signed, err := token.GenerateToken(admin.ID.Hex(), string(RoleAdmin))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Created(c, AuthResponse{Token: signed, User: admin})
}

// AdminLogin godoc
// @Summary Login as an administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	admin, err := h.repo.FindAdminByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to look up account")
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	signed, err := token.GenerateToken(admin.ID.Hex(), string(RoleAdmin))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{Token: signed, User: admin})
}
