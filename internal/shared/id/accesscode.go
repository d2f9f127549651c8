// Package id generates identifiers and check-in access codes.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// AccessCodeAlphabet excludes 0, O, 1 and I so codes survive being read
	// aloud or written on paper at the front desk.
	AccessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// AccessCodeLength is the length of generated access codes.
	AccessCodeLength = 10

	// ReferenceLength is the length of locally generated payment references.
	ReferenceLength = 16

	referenceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewAccessCode generates a cryptographically random check-in access code.
func NewAccessCode() (string, error) {
	return generate(AccessCodeAlphabet, AccessCodeLength)
}

// MustNewAccessCode generates an access code and panics on error.
// crypto/rand only fails when the OS entropy source is unavailable.
func MustNewAccessCode() string {
	code, err := NewAccessCode()
	if err != nil {
		panic(err)
	}
	return code
}

// NewPaymentReference generates a local payment reference in the format
// "hh_randomstring". The gateway-issued reference replaces it once the
// transaction is initialized; local references keep pending rows unique.
func NewPaymentReference() (string, error) {
	ref, err := generate(referenceAlphabet, ReferenceLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("hh_%s", ref), nil
}

func generate(alphabet string, length int) (string, error) {
	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}
