package dto

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	AdminID       uint   `json:"adminId,omitempty"`
	Email         string `json:"email,omitempty"`
}

// AuthSyncRequest is a cross-tab auth event posted by a signed-in client
type AuthSyncRequest struct {
	Type string `json:"type" binding:"required,oneof=SIGNED_IN SIGNED_OUT"`
}
