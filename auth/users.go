package auth

import (
	"photobook/config"

	"golang.org/x/crypto/bcrypt"
)

var users map[string][]byte

// Init hashes the config-defined accounts once at startup.
func Init() {
	users = make(map[string][]byte, 2)
	addUser(config.USERNAME, config.PASSWORD)
	addUser(config.USERNAME2, config.PASSWORD2)
}

func addUser(name, password string) {
	if name == "" || password == "" {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	users[name] = hash
}

func CheckCredentials(name, password string) bool {
	hash, ok := users[name]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
