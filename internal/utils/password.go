package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha gera o hash bcrypt da senha do corretor.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckSenha confere a senha em texto contra o hash armazenado.
func CheckSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
