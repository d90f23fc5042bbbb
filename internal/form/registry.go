package form

import (
	"fmt"
	"strings"

	"github.com/secureform/signupd/pkg/validator"
)

// RuleBuilder produces the ordered rule list for one field. The full
// submission is passed alongside the value for cross-field rules such as
// confirm-password and the password personal-detail check.
type RuleBuilder func(value string, sub Submission) []validator.Rule

// Registry maps fields to their rule builders in a stable evaluation order.
type Registry struct {
	cfg      Config
	order    []Field
	builders map[Field]RuleBuilder
}

// Register adds or replaces the rule builder for a field. Newly seen fields
// are appended to the evaluation order.
func (r *Registry) Register(f Field, b RuleBuilder) {
	if _, ok := r.builders[f]; !ok {
		r.order = append(r.order, f)
	}
	r.builders[f] = b
}

// Fields returns the registered fields in evaluation order.
func (r *Registry) Fields() []Field {
	return r.order
}

// NewSignupRegistry builds the full signup rule set from the given config.
func NewSignupRegistry(cfg Config) *Registry {
	r := &Registry{cfg: cfg, builders: make(map[Field]RuleBuilder)}

	r.Register(FieldName, func(v string, _ Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("name", v).WithMessage("Enter your name"),
			validator.AlphaSpace("name", v).WithMessage("Full name should only contain alphabets and spaces"),
			validator.LenBetween("name", v, cfg.NameMinLen, cfg.NameMaxLen).
				WithMessage(fmt.Sprintf("Full name must be between %d to %d characters", cfg.NameMinLen, cfg.NameMaxLen)),
		}
	})

	r.Register(FieldEmail, func(v string, _ Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("email", v).WithMessage("Enter your email"),
			validator.EmailShape("email", v).WithMessage("Enter a valid email address"),
			validator.EmailDomainIn("email", v, cfg.EmailDomains).WithMessage("Email domain is not whitelisted"),
		}
	})

	r.Register(FieldPassword, func(v string, sub Submission) []validator.Rule {
		strength := fmt.Sprintf("Password must contain at least %d characters, including a capital letter, a lowercase letter, a number, and a special character", cfg.PasswordMinLen)
		return []validator.Rule{
			validator.Required("password", v).WithMessage("Enter your password"),
			validator.MinLen("password", v, cfg.PasswordMinLen).WithMessage(strength),
			validator.PasswordLowercase("password", v).WithMessage(strength),
			validator.PasswordUppercase("password", v).WithMessage(strength),
			validator.PasswordDigit("password", v).WithMessage(strength),
			validator.PasswordSymbol("password", v).WithMessage(strength),
			validator.PasswordAllowedChars("password", v).WithMessage(strength),
			validator.NotContainsAny("password", v, cfg.PasswordBlacklist).
				WithMessage(`Password cannot contain common words like "qwerty" or "password"`),
			// Evaluated as one rule so the message can name every
			// matching detail, not just the first.
			validator.NotContainsPersonal("password", v,
				validator.PersonalDetail{Label: "name", Value: strings.ToLower(sub.Get(FieldName))},
				validator.PersonalDetail{Label: "age", Value: sub.Get(FieldAge)},
				validator.PersonalDetail{Label: "citizen ID", Value: sub.Get(FieldCID)},
			),
		}
	})

	r.Register(FieldConfirmPassword, func(v string, sub Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("confirmPassword", v).WithMessage("Confirm your password"),
			validator.Equals("confirmPassword", v, sub.Get(FieldPassword)).WithMessage("Passwords do not match"),
		}
	})

	r.Register(FieldAge, func(v string, _ Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("age", v).WithMessage("Enter your age"),
			validator.Digits("age", v, 1, 3).WithMessage("Age must be a number"),
			validator.IntBetween("age", v, cfg.AgeMin, cfg.AgeMax).
				WithMessage(fmt.Sprintf("Enter a valid age between %d and %d", cfg.AgeMin, cfg.AgeMax)),
		}
	})

	r.Register(FieldCID, func(v string, _ Submission) []validator.Rule {
		// The letter and special-character checks are redundant with the
		// exact-digits pattern but surface more specific messages.
		return []validator.Rule{
			validator.Required("cid", v).WithMessage("Enter your citizen ID"),
			validator.NoAlpha("cid", v).WithMessage("Citizen ID must not contain alphabets"),
			validator.NoSpecialChars("cid", v).WithMessage("Citizen ID must not contain special characters"),
			validator.DigitsExactly("cid", v, cfg.CIDLength).
				WithMessage(fmt.Sprintf("Citizen ID must be exactly %d digits long", cfg.CIDLength)),
		}
	})

	r.Register(FieldGender, func(v string, _ Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("gender", v).WithMessage("Select your gender"),
			validator.InList("gender", v, cfg.Genders).
				WithMessage(fmt.Sprintf("Gender must be %s", orList(cfg.Genders))),
		}
	})

	return r
}

// NewLoginRegistry builds the minimal login rule set: name and password must
// be present, nothing more. Strength rules apply at signup only.
func NewLoginRegistry(cfg Config) *Registry {
	r := &Registry{cfg: cfg, builders: make(map[Field]RuleBuilder)}

	r.Register(FieldName, func(v string, _ Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("name", v).WithMessage("Enter your name"),
		}
	})

	r.Register(FieldPassword, func(v string, _ Submission) []validator.Rule {
		return []validator.Rule{
			validator.Required("password", v).WithMessage("Enter your password"),
		}
	})

	return r
}

// orList renders ["Male","Female","Other"] as "Male, Female, or Other".
func orList(values []string) string {
	if len(values) <= 1 {
		return strings.Join(values, "")
	}
	return strings.Join(values[:len(values)-1], ", ") + ", or " + values[len(values)-1]
}
