package users

import (
	"crypto/rand"
	"math/big"
)

const passwordLength = 12

// Ambiguous letters (I, O, l, o) are left out of the letter classes.
var passwordClasses = []string{
	"ABCDEFGHJKLMNPQRSTUVWXYZ",
	"abcdefghijkmnpqrstuvwxyz",
	"0123456789",
	"!@#$%&*-_",
}

// GenerateRandomPassword returns a 12 character password containing at
// least one character from each class, drawn from a cryptographically
// secure source.
func GenerateRandomPassword() string {
	var all string
	for _, class := range passwordClasses {
		all += class
	}

	password := make([]byte, 0, passwordLength)
	for _, class := range passwordClasses {
		password = insertAtRandom(password, randomFrom(class))
	}

	for len(password) < passwordLength {
		password = insertAtRandom(password, randomFrom(all))
	}

	return string(password)
}

func randomFrom(characters string) byte {
	return characters[randomIndex(len(characters))]
}

func insertAtRandom(password []byte, character byte) []byte {
	position := randomIndex(len(password) + 1)
	password = append(password, 0)
	copy(password[position+1:], password[position:])
	password[position] = character
	return password
}

func randomIndex(n int) int {
	index, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the process cannot do anything useful.
		panic(err)
	}
	return int(index.Int64())
}
