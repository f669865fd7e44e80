//go:build ignore

// generate_keys prints a JWT secret and the bcrypt hash of the admin
// password as .env lines.
//
//	go run scripts/generate_keys.go [-cost 12] [password]
//
// A random password is generated and printed to stderr when none is given.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func randomString(n int) string {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		fail(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "generate_keys:", err)
	os.Exit(1)
}

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	password := flag.Arg(0)
	if password == "" {
		password = randomString(18)
		fmt.Fprintf(os.Stderr, "admin password: %s\n", password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), *cost)
	if err != nil {
		fail(err)
	}

	// HS256 wants at least 256 bits of key.
	fmt.Printf("JWT_SECRET_KEY=%s\n", randomString(32))
	fmt.Printf("PORTFOLIO_PASSWORD_HASH='%s'\n", hash)
}
