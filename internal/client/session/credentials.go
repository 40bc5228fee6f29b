package session

// Credential is one row of the preloaded credential table.
type Credential struct {
	Username string
	Password string
	Role     Role
}

// Verifier answers whether an identifier/secret pair is valid and, if so,
// which role it carries. Implementations other than the fixed table (token
// verification, an identity provider) can replace it without touching the
// rest of the client.
type Verifier interface {
	Verify(username, password string) (Role, bool)
}

// DefaultCredentials is the demo credential table. Exact, case-sensitive
// matching, no hashing: this is a demonstration guard, not production
// authentication.
func DefaultCredentials() []Credential {
	return []Credential{
		{Username: "admin", Password: "admin", Role: RoleAdmin},
		{Username: "user", Password: "user", Role: RoleUser},
		{Username: "guest", Password: "guest", Role: RoleGuest},
	}
}

type fixedVerifier struct {
	creds []Credential
}

// NewFixedVerifier builds a Verifier over a fixed credential table.
func NewFixedVerifier(creds []Credential) Verifier {
	return &fixedVerifier{creds: creds}
}

func (f *fixedVerifier) Verify(username, password string) (Role, bool) {
	for _, c := range f.creds {
		if c.Username == username && c.Password == password {
			return c.Role, true
		}
	}
	return "", false
}
