package roster

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	passwordLength  = 15
	passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+{}|<>?"
)

// GeneratePassword случайный пароль для кнопки "Reset Password".
func GeneratePassword() (string, error) {
	max := big.NewInt(int64(len(passwordCharset)))
	buf := make([]byte, passwordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf[i] = passwordCharset[n.Int64()]
	}
	return string(buf), nil
}
