package otp

import "github.com/xlzd/gotp"

// Generator produces short numeric verification codes. Codes are
// drawn independently per call; collisions across emails are fine
// because codes are scoped per recipient.
type Generator interface {
	RandomCode(digits int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a zero-padded numeric code of the requested
// length. A fresh random secret is used for every call, so the output
// is effectively a uniform random code, not a reproducible TOTP.
func (g *GOTPGenerator) RandomCode(digits int) string {
	secret := gotp.RandomSecret(16)

	return gotp.NewTOTP(secret, digits, 30, nil).Now()
}
