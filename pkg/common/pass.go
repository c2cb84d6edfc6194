package common

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"

	"golang.org/x/crypto/argon2"
)

const SaltLen = 8

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func RandStringRunes(n int) string {
	b := make([]rune, n)
	max := big.NewInt(int64(len(letterRunes)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = letterRunes[idx.Int64()]
	}
	return string(b)
}

// HashPass returns salt followed by the argon2id hash of plainPassword.
func HashPass(plainPassword, salt string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	res := make([]byte, len(salt))
	copy(res, salt)
	return append(res, hashedPass...)
}

// CheckPass compares plainPassword with a hash produced by HashPass.
func CheckPass(plainPassword string, hashed []byte) bool {
	if len(hashed) < SaltLen {
		return false
	}
	salt := string(hashed[0:SaltLen])
	return subtle.ConstantTimeCompare(HashPass(plainPassword, salt), hashed) == 1
}
