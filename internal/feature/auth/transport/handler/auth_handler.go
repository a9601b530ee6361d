// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/transport/http/dto"
	jwtmw "account_backend/internal/platform/jwt"
)

const (
	msgInvalidBody  = "invalid request body"
	msgInternal     = "internal server error"
	msgRegistered   = "user registered successfully"
	msgLoggedIn     = "login successful"
	msgUnauthorized = "unauthorized"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention, the interface is defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates an account and returns its ID.
	Register(ctx context.Context, nationalID, email, password, birthDate string) (uint, error)
	// Login authenticates the account and returns a signed token on success.
	Login(ctx context.Context, nationalID, password string) (string, *entity.Account, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the account registration endpoint.
//   - 400 on a malformed body or invalid fields
//   - 409 when the CPF or the email is already registered
//   - 500 on a store failure
//   - 201 with the new account ID on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgInvalidBody})
		return
	}

	id, err := h.auth.Register(c.Request.Context(), req.CPF, req.Email, req.Password, req.DateOfBirth)
	if err != nil {
		h.respondError(c, "register", err)
		return
	}
	slog.Info("account registered", "account_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{Message: msgRegistered, UserID: id})
}

// Login handles the login endpoint.
//   - 401 for an unknown CPF or a wrong password, with one message for both
//   - 500 on a store failure
//   - 200 with the token and the non-sensitive account fields on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: msgInvalidBody})
		return
	}

	token, account, err := h.auth.Login(c.Request.Context(), req.CPF, req.Password)
	if err != nil {
		h.respondError(c, "login", err)
		return
	}
	slog.Info("account login successful", "account_id", account.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Message: msgLoggedIn,
		Token:   token,
		User: dto.UserRes{
			ID:    account.ID,
			CPF:   account.NationalID,
			Email: account.Email,
		},
	})
}

// Me returns the identity carried by the verified bearer token.
// It must run behind jwtmw.AuthRequired.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: msgUnauthorized})
		return
	}
	id, err := claims.AccountID()
	if err != nil {
		slog.Warn("token subject rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: msgUnauthorized})
		return
	}
	c.JSON(http.StatusOK, dto.MeRes{ID: id, CPF: claims.CPF})
}

// respondError maps an error kind to its status and message.
// Only validation messages reach the client verbatim; store detail is logged only.
func (h *AuthHandler) respondError(c *gin.Context, op string, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		slog.Warn(op+" rejected", "reason", vErr.Message, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: vErr.Message})
	case errors.Is(err, domain.ErrConflict):
		// Do not reveal which field conflicted.
		slog.Warn(op+" conflict", "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, dto.MessageRes{Message: domain.ErrConflict.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		slog.Warn(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: domain.ErrInvalidCredentials.Error()})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: msgInternal})
	}
}
