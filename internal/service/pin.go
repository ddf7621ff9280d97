package service

import "crypto/subtle"

// PinGuard подтверждение разрушительных действий PIN-кодом.
type PinGuard struct {
	pin string
}

// NewPinGuard создаёт проверку с заданным PIN.
func NewPinGuard(pin string) PinGuard {
	return PinGuard{pin: pin}
}

// Check сравнивает PIN за постоянное время.
func (g PinGuard) Check(pin string) error {
	if g.pin == "" || subtle.ConstantTimeCompare([]byte(g.pin), []byte(pin)) != 1 {
		return ErrForbidden("INVALID_PIN", "Incorrect PIN. Please try again.")
	}
	return nil
}
