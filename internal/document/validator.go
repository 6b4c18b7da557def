// Package document validates Brazilian tax identifiers (CPF and CNPJ)
// using the official check-digit algorithms.
package document

import "strings"

// Type classifies a normalized digit string.
type Type string

const (
	TypeCPF     Type = "cpf"
	TypeCNPJ    Type = "cnpj"
	TypeInvalid Type = "invalid"
)

// Result is the outcome of validating a raw document string.
// Validators never return errors through panics or error values; callers
// render Err inline when Valid is false.
type Result struct {
	Valid bool
	Err   string
}

// Normalize strips every character that is not a decimal digit.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify determines the document type of a digit string by length.
func Classify(digits string) Type {
	switch len(digits) {
	case 11:
		return TypeCPF
	case 14:
		return TypeCNPJ
	default:
		return TypeInvalid
	}
}

// allSame reports whether every byte in s equals the first one.
// Repeated-digit sequences like 111.111.111-11 pass the checksum but are
// not issued, so they are rejected up front.
func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCPF checks the two CPF verification digits.
// The input must already be normalized; any non-digit makes it fail.
func ValidateCPF(digits string) bool {
	if len(digits) != 11 || !isDigits(digits) || allSame(digits) {
		return false
	}

	// First check digit: weights 10..2 over digits[0..8].
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if checkDigitCPF(sum) != int(digits[9]-'0') {
		return false
	}

	// Second check digit: weights 11..2 over digits[0..9].
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	return checkDigitCPF(sum) == int(digits[10]-'0')
}

// checkDigitCPF applies the CPF remainder rule: (sum*10) mod 11, with
// 10 and 11 mapped to 0.
func checkDigitCPF(sum int) int {
	d := (sum * 10) % 11
	if d >= 10 {
		d = 0
	}
	return d
}

// ValidateCNPJ checks the two CNPJ verification digits.
func ValidateCNPJ(digits string) bool {
	if len(digits) != 14 || !isDigits(digits) || allSame(digits) {
		return false
	}

	if checkDigitCNPJ(digits, 11) != int(digits[12]-'0') {
		return false
	}
	return checkDigitCNPJ(digits, 12) == int(digits[13]-'0')
}

// checkDigitCNPJ computes a CNPJ check digit over digits[0..last] using
// weights that cycle 2,3,...,9 starting from the rightmost position.
func checkDigitCNPJ(digits string, last int) int {
	sum := 0
	weight := 2
	for i := last; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		if weight == 9 {
			weight = 2
		} else {
			weight++
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Validate normalizes raw input and checks it against the expected type.
// Wrong length and failed checksum both yield the same "check the digits"
// message; only type mismatch is distinguished, by the strategy layer.
func Validate(raw string, expected Type) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{Valid: false, Err: strings.ToUpper(string(expected)) + " é obrigatório"}
	}

	digits := Normalize(raw)

	var ok bool
	switch expected {
	case TypeCPF:
		ok = ValidateCPF(digits)
	case TypeCNPJ:
		ok = ValidateCNPJ(digits)
	default:
		ok = false
	}

	if !ok {
		return Result{Valid: false, Err: strings.ToUpper(string(expected)) + " inválido. Verifique os dígitos."}
	}
	return Result{Valid: true}
}
