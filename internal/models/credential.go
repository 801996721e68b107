package models

// Credential is a stored username/password pair. The password is kept as given.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Matches reports whether both fields equal the given values exactly.
func (c Credential) Matches(username, password string) bool {
	return c.Username == username && c.Password == password
}
