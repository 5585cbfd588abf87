package request

type AdminLogin struct {
	Password string `json:"password" binding:"required"`
}
