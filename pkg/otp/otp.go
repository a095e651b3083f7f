// Package otp genera y verifica códigos de un solo uso para el login por email.
// El código nunca se guarda en claro: solo su hash SHA-256 en hex.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
)

// ValidityMinutes ventana de validez del código desde su emisión, en minutos.
const ValidityMinutes = 10

// Generate produce un código numérico de 6 dígitos con crypto/rand.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("otp: generar código: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Hash devuelve el SHA-256 hex del código para almacenamiento.
func Hash(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Verify compara un código contra su hash almacenado en tiempo constante.
func Verify(code, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(code)), []byte(storedHash)) == 1
}
