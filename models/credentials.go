package models

// CredentialsKind discriminates the two ways a caller can prove identity.
type CredentialsKind int

const (
	// CredentialsNone means the request carried no usable credentials.
	CredentialsNone CredentialsKind = iota

	// CredentialsToken means a previously issued bearer token was supplied.
	CredentialsToken

	// CredentialsPassword means a username/password pair was supplied.
	CredentialsPassword
)

// Credentials is a tagged union of the supported credential kinds, resolved
// at the transport boundary by which fields the request actually carried.
// Exactly one kind is set; the service layer never has to guess which mode
// the caller used.
type Credentials struct {
	Kind CredentialsKind

	// Token is set only when Kind is CredentialsToken.
	Token string

	// Username and Password are set only when Kind is CredentialsPassword.
	Username string
	Password string
}

// TokenCredentials builds a Credentials value of the token kind.
func TokenCredentials(token string) Credentials {
	return Credentials{Kind: CredentialsToken, Token: token}
}

// PasswordCredentials builds a Credentials value of the username/password kind.
func PasswordCredentials(username, password string) Credentials {
	return Credentials{Kind: CredentialsPassword, Username: username, Password: password}
}
