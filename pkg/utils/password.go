package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of pw. GenerateFromPassword only
// fails on an out-of-range cost, which DefaultCost never is.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
