package dto

// ── Authentification ──

// SignupRequest création d'un compte
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"required,oneof=Stagiaire Enseignant EtablissementFormation EtablissementRegionale EtablissementNationale"`
}

// LoginRequest connexion par identifiant
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest renouvellement du couple de tokens
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse couple de tokens délivré à la connexion
type TokenResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int            `json:"expires_in"`
	Compte       CompteResponse `json:"compte"`
}

// CompteResponse représentation publique d'un compte
type CompteResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
