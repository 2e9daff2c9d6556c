package controllers

import (
	"context"
	"net/http"
	"time"

	"go-food-delivery/middleware"
	"go-food-delivery/models"
	"go-food-delivery/services"
	"go-food-delivery/utils"

	"github.com/gorilla/mux"
)

// UserService is the account half of the services layer
type UserService interface {
	Service[models.User, models.UserPatch, models.UserQuery]
	Verify(ctx context.Context, id, code string) (bool, error)
	SendVerification(ctx context.Context, id string) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// UserController handles registration, login, verification and the admin
// user endpoints
type UserController struct {
	*resource[models.User, models.UserPatch, models.UserQuery]
	users  UserService
	tokens *utils.TokenManager
}

// NewUserController creates a UserController issuing tokens from tokens
func NewUserController(svc UserService, tokens *utils.TokenManager, timeout time.Duration) *UserController {
	return &UserController{
		resource: &resource[models.User, models.UserPatch, models.UserQuery]{
			svc:     svc,
			parse:   parseUserQuery,
			timeout: timeout,
		},
		users:  svc,
		tokens: tokens,
	}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyRequest struct {
	Code string `json:"code" validate:"required,len=4,numeric"`
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sendBadRequest(w, err.Error())
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	uc.create(w, r, user)
}

// Login exchanges local credentials for a token
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sendBadRequest(w, err.Error())
		return
	}

	ctx, cancel := uc.withTimeout(r)
	defer cancel()
	user, err := uc.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	token, err := uc.tokens.GenerateJWT(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, services.KindInternal.String(), "Error generating token")
		return
	}
	sendSuccess(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

// Verify checks the emailed code of an account
func (uc *UserController) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sendBadRequest(w, err.Error())
		return
	}

	ctx, cancel := uc.withTimeout(r)
	defer cancel()
	verified, err := uc.users.Verify(ctx, mux.Vars(r)["id"], req.Code)
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, map[string]bool{"verified": verified})
}

// SendVerification emails the pending code of an account
func (uc *UserController) SendVerification(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := uc.withTimeout(r)
	defer cancel()
	if err := uc.users.SendVerification(ctx, mux.Vars(r)["id"]); err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, map[string]string{"message": "Verification code sent"})
}

// Profile returns the account behind the token
func (uc *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		sendUnauthorized(w, "Unauthorized")
		return
	}

	ctx, cancel := uc.withTimeout(r)
	defer cancel()
	user, err := uc.users.GetByID(ctx, claims.UserID, "")
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, user)
}
