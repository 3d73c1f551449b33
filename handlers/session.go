package handlers

import (
	"errors"
	"net/http"
	"sync"

	"suuq-storefront/authapi"
	"suuq-storefront/session"
	"suuq-storefront/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Session *session.Controller
	Auth    *authapi.Client

	// One submission at a time, mirroring a disabled submit button
	mu       sync.Mutex
	inFlight bool
}

func (h *SessionHandler) beginSubmit() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inFlight {
		return false
	}
	h.inFlight = true
	return true
}

func (h *SessionHandler) endSubmit() {
	h.mu.Lock()
	h.inFlight = false
	h.mu.Unlock()
}

// GetStatus reports the controller's current state. The first call issues
// the one remote status check; until it resolves the status is "loading".
func (h *SessionHandler) GetStatus(c *gin.Context) {
	h.Session.CheckStatus(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"authStatus":  h.Session.Status(),
		"currentUser": h.Session.CurrentUser(),
	})
}

// authFailure maps a remote auth error onto the gateway response. Rate
// limits pass the retry-after hint through; transport failures become a
// 502 with a safe message.
func authFailure(c *gin.Context, err error) {
	var apiErr *authapi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			retryAfter := apiErr.RetryAfter
			if retryAfter <= 0 {
				retryAfter = 300
			}
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       apiErr.Message,
				"retry_after": retryAfter,
			})
			return
		}
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to reach the authentication service"})
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !h.beginSubmit() {
		c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
		return
	}
	defer h.endSubmit()

	user, err := h.Auth.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		authFailure(c, err)
		return
	}

	h.Session.HandleAuthSuccess(user)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *SessionHandler) Signup(c *gin.Context) {
	var req struct {
		FullName     string `json:"full_name" binding:"required"`
		Username     string `json:"username" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Password     string `json:"password" binding:"required,min=8"`
		ProfileImage string `json:"profile_image"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.ProfileImage != "" {
		if err := utils.ValidateProfileImage(req.ProfileImage); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if !h.beginSubmit() {
		c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
		return
	}
	defer h.endSubmit()

	user, err := h.Auth.Signup(c.Request.Context(), authapi.SignupRequest{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		authFailure(c, err)
		return
	}

	h.Session.HandleAuthSuccess(user)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Logout always leaves the session logged out, whether or not the remote
// logout call went through.
func (h *SessionHandler) Logout(c *gin.Context) {
	h.Session.HandleLogout(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
