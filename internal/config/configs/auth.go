package configs

// Auth configures bearer token verification. Tokens are HS256 JWTs whose
// subject is the actor id and whose role claim is creator, brand or admin.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	// Issuer, when set, must match the token iss claim.
	Issuer string `env:"ISSUER"`
}
