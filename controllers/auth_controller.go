package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/middleware"
	"tourbooking/models"
	"tourbooking/response"
	"tourbooking/services"
	"tourbooking/services/authsync"
	"tourbooking/services/logger"
)

type AuthController struct {
	Auth     *services.AuthService
	Sessions *services.SessionManager
	Hub      *authsync.Hub
	Logger   logger.Logger
}

func NewAuthController(auth *services.AuthService, sessions *services.SessionManager, hub *authsync.Hub, log logger.Logger) AuthController {
	if log == nil {
		log = logger.Nop{}
	}
	return AuthController{Auth: auth, Sessions: sessions, Hub: hub, Logger: log}
}

// AdminChannelID is the auth-sync user id of an admin's tabs
func AdminChannelID(adminID uint) string {
	return fmt.Sprintf("admin:%d", adminID)
}

// startSession writes the cookie and tells the admin's other tabs
func (a AuthController) startSession(c *gin.Context, admin *models.Admin) error {
	if err := a.Sessions.Write(c.Writer, services.AdminSession{
		AdminID:  admin.ID,
		Email:    admin.Email,
		IssuedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	a.broadcast(AdminChannelID(admin.ID), authsync.SignedIn)
	return nil
}

func (a AuthController) endSession(c *gin.Context) {
	if s, err := a.Sessions.FromRequest(c.Request); err == nil {
		a.broadcast(AdminChannelID(s.AdminID), authsync.SignedOut)
	}
	a.Sessions.Clear(c.Writer)
}

func (a AuthController) broadcast(userID string, ev authsync.Event) {
	if a.Hub == nil {
		return
	}
	if _, err := a.Hub.Broadcast(userID, ev, ""); err != nil {
		a.Logger.Warn("auth sync %s for %s: %v", ev, userID, err)
	}
}

// Login godoc
// @Summary  Admin sign in
// @Tags     auth
// @Accept   json
// @Param    body body dto.LoginInput true "credentials"
// @Success  200 {object} response.Response
// @Failure  401 {object} response.ErrorResponse
// @Failure  429 {object} response.ErrorResponse
// @Router   /api/auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badBinding(c, err)
		return
	}
	admin, err := a.Auth.Login(c.Request.Context(), input.Email, input.Password, c.ClientIP())
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := a.startSession(c, admin); err != nil {
		a.Logger.Error("seal session: %v", err)
		response.ServerError(c)
		return
	}
	response.Success(c, dto.SessionResponse{Authenticated: true, AdminID: admin.ID, Email: admin.Email})
}

func (a AuthController) Logout(c *gin.Context) {
	a.endSession(c)
	response.Success(c, dto.SessionResponse{Authenticated: false})
}

// GetSession reports whether the request carries a valid admin session
func (a AuthController) GetSession(c *gin.Context) {
	s, err := a.Sessions.FromRequest(c.Request)
	if err != nil {
		response.Success(c, dto.SessionResponse{Authenticated: false})
		return
	}
	response.Success(c, dto.SessionResponse{Authenticated: true, AdminID: s.AdminID, Email: s.Email})
}

// SyncAuth godoc
// @Summary  Broadcast a sign-in or sign-out to the user's other tabs
// @Tags     auth
// @Accept   json
// @Param    body body dto.AuthSyncRequest true "event"
// @Success  200 {object} response.Response
// @Failure  401 {object} response.ErrorResponse
// @Router   /api/auth/sync [post]
func (a AuthController) SyncAuth(c *gin.Context) {
	user := middleware.User(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	var req dto.AuthSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	delivered, err := a.Hub.Broadcast(user.Subject, authsync.Event(req.Type), c.GetHeader("X-Tab-ID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"delivered": delivered})
}

// UserSocket joins the signed-in user's auth-sync channel
func (a AuthController) UserSocket(c *gin.Context) {
	user := middleware.User(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	if err := a.Hub.Serve(c.Writer, c.Request, user.Subject); err != nil {
		a.Logger.Warn("auth sync upgrade for %s: %v", user.Subject, err)
	}
}

// AdminSocket joins the admin's auth-sync channel
func (a AuthController) AdminSocket(c *gin.Context) {
	admin := middleware.Admin(c)
	if admin == nil {
		response.Unauthorized(c)
		return
	}
	if err := a.Hub.Serve(c.Writer, c.Request, AdminChannelID(admin.AdminID)); err != nil {
		a.Logger.Warn("admin sync upgrade for %d: %v", admin.AdminID, err)
	}
}
