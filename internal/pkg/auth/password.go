package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost used for warden PINs
const BcryptCost = 12

// HashPIN hashes a warden PIN for storage in admin.pin_hash
func HashPIN(pin string) (string, error) {
	return HashPINWithCost(pin, BcryptCost)
}

// HashPINWithCost hashes a PIN with an explicit bcrypt cost
func HashPINWithCost(pin string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPIN compares a PIN against its bcrypt hash
func CheckPIN(hashedPIN, pin string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
	return err == nil
}
