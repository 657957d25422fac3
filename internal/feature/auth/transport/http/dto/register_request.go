package dto

// RegisterReq represents the request body for /api/auth/register.
// Email may carry surrounding whitespace; the usecase trims and lower-cases it.
type RegisterReq struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,trimmed_email"`
	Password string `json:"password" binding:"required"`
}
