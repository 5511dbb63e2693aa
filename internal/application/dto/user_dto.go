package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// UserResponse datos públicos del usuario autenticado.
type UserResponse struct {
	ID      string `json:"id"`
	Usuario string `json:"usuario"`
	Nombre  string `json:"nombre"`
	Rol     string `json:"rol"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}
