package domain

import (
	"regexp"
	"strings"
)

const cpfLength = 11

var emailPattern = regexp.MustCompile(`^[\w!#$%&'*+/=?` + "`" + `{|}~^-]+(?:\.[\w!#$%&'*+/=?` + "`" + `{|}~^-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

var nonDigits = regexp.MustCompile(`\D`)

// Customer is a registered customer identified by their CPF.
type Customer struct {
	ID    uint
	Name  string
	Email string
	CPF   string
}

// NewCustomer validates and normalizes the given fields. The CPF is reduced
// to its 11 digits and checksum-verified; the email is optional but must be
// well formed when present.
func NewCustomer(name, email, cpf string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewDomainError("Name cannot be empty")
	}

	normalizedEmail, err := validateEmail(email)
	if err != nil {
		return nil, err
	}

	normalizedCPF, err := NormalizeCPF(cpf)
	if err != nil {
		return nil, err
	}

	return &Customer{
		Name:  name,
		Email: normalizedEmail,
		CPF:   normalizedCPF,
	}, nil
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", nil
	}
	if !emailPattern.MatchString(email) {
		return "", NewDomainError("Invalid email format: " + email)
	}
	return strings.ToLower(email), nil
}

// NormalizeCPF strips formatting and verifies both CPF checksum digits.
func NormalizeCPF(cpf string) (string, error) {
	clean := nonDigits.ReplaceAllString(cpf, "")
	if len(clean) != cpfLength {
		return "", NewDomainError("CPF must contain exactly 11 digits")
	}
	if !validCPFChecksum(clean) {
		return "", NewDomainError("Invalid CPF checksum")
	}
	return clean, nil
}

func validCPFChecksum(cpf string) bool {
	// A CPF made of a single repeated digit passes the checksum but is not a
	// valid registry number.
	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	digit := func(i int) int { return int(cpf[i] - '0') }

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digit(i) * (10 - i)
	}
	first := 11 - (sum % 11)
	if first >= 10 {
		first = 0
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digit(i) * (11 - i)
	}
	second := 11 - (sum % 11)
	if second >= 10 {
		second = 0
	}

	return first == digit(9) && second == digit(10)
}
