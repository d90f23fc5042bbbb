package form

// Config carries the constraint parameters of the rule set. Injecting them
// here keeps every consumer of the rules on one contract instead of drifting
// copies with, say, different age bounds.
type Config struct {
	NameMinLen        int
	NameMaxLen        int
	EmailDomains      []string
	PasswordMinLen    int
	PasswordBlacklist []string
	AgeMin            int
	AgeMax            int
	CIDLength         int
	Genders           []string
}

// DefaultConfig returns the canonical rule parameters.
func DefaultConfig() Config {
	return Config{
		NameMinLen: 3,
		NameMaxLen: 25,
		EmailDomains: []string{
			"gmail.com", "icloud.com", "rub.edu.bt", "yahoo.com", "hotmail.com",
			"outlook.com", "aol.com", "mail.com", "zoho.com", "protonmail.com",
			"tutanota.com", "gmx.com",
		},
		PasswordMinLen:    8,
		PasswordBlacklist: []string{"qwerty", "123", "abc", "password", "letmein", "welcome"},
		AgeMin:            1,
		AgeMax:            150,
		CIDLength:         11,
		Genders:           []string{"Male", "Female", "Other"},
	}
}
