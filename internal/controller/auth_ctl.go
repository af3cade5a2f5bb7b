package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates an admin account and issues a bearer token.
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginReq true "credentials"
// @Success 200 {object} dto.LoginResp
// @Failure 400 {object} map[string]string
// @Router /api/auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "Credenciais inválidas", err)
		return
	}

	token, expiresIn, err := ctl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, "Credenciais inválidas", err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResp{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
