package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Birthdate string `json:"birthdate"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ScoreRequest is the request body for submitting a score
type ScoreRequest struct {
	Score int `json:"score"`
}

// CreditRequest is the request body for adding stars
type CreditRequest struct {
	Stars int `json:"stars"`
}

// PurchaseRequest is the request body for purchasing a skin
type PurchaseRequest struct {
	SkinID int `json:"skin_id"`
}

// SelectSkinRequest is the request body for equipping a skin
type SelectSkinRequest struct {
	SkinID int `json:"skin_id"`
}
