// controllers/auth.go
package controllers

import (
	"net/http"

	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AuthController struct {
	auth   *services.AuthService
	tokens *utils.TokenIssuer
	secure bool
}

func NewAuthController(auth *services.AuthService, tokens *utils.TokenIssuer, secureCookie bool) *AuthController {
	return &AuthController{auth: auth, tokens: tokens, secure: secureCookie}
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	account, err := h.auth.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.tokens.Generate(account.ID.String(), string(account.Role))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie(
		utils.TokenCookie,
		token,
		int(h.tokens.Expiry().Seconds()),
		"/",
		"",
		h.secure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"account": gin.H{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
	})
}

func (h *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.TokenCookie, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthController) Me(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	account, err := h.auth.GetAccount(c.Request.Context(), caller.AccountID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": gin.H{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
	})
}

// RequireCaller resolves the token subject set by utils.AuthMiddleware into
// a services.Caller. It must run after that middleware.
func (h *AuthController) RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, exists := c.Get(utils.ContextAccountID)
		if !exists {
			utils.RespondWithError(c, http.StatusUnauthorized, "Account ID not found in context")
			return
		}
		id, err := uuid.Parse(accountID.(string))
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid account ID format")
			return
		}

		caller, err := h.auth.ResolveCaller(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.Set(contextCaller, caller)
		c.Next()
	}
}
