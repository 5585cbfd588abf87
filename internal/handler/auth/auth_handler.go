package auth

import (
	"net/http"

	"github.com/dinerozz/screen-time-backend/config"
	"github.com/dinerozz/screen-time-backend/internal/model/request"
	"github.com/dinerozz/screen-time-backend/internal/model/response/wrapper"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	auth config.AuthConfig
}

func NewAuthHandler(auth config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// Login godoc
// @Summary      Authenticate as admin
// @Description  Exchange the admin password for a JWT cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.AdminLogin  true  "Admin password"
// @Success      200          {object}  wrapper.ResponseWrapper{data=string}
// @Failure      400          {object}  wrapper.ErrorWrapper
// @Failure      500          {object}  wrapper.ErrorWrapper
// @Router       /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.AdminLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	if h.auth.AdminPasswordHash == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Admin password is not configured", Success: false})
		return
	}

	err := bcrypt.CompareHashAndPassword([]byte(h.auth.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid password", Success: false})
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.SetCookie("token", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: token, Success: true})
}
