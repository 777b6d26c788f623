package domain

// Card is the credential pair linked to an account. Credentials match by
// exact string equality on both fields.
type Card struct {
	Number   string
	Password string
}
