package model

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

var (
	firstNames = []string{"ada", "alan", "barbara", "claude", "dennis", "edsger", "frances", "grace",
		"john", "ken", "leslie", "linus", "margaret", "niklaus", "radia", "rob", "tony", "yukihiro"}
	lastNames = []string{"lovelace", "turing", "liskov", "shannon", "ritchie", "dijkstra", "allen",
		"hopper", "backus", "thompson", "lamport", "torvalds", "hamilton", "wirth", "perlman", "pike", "hoare"}
	domains = []string{"example.com", "example.org", "example.net", "mail.test", "inbox.test"}
)

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%&*"

// GenerateUsers returns count fake users. The same seed always yields the
// same users, IDs included. A count below one yields no users.
func GenerateUsers(count int, seed uint64) []User {
	if count <= 0 {
		return []User{}
	}
	var key [32]byte
	for i := range 8 {
		key[i] = byte(seed >> (8 * i))
	}
	src := rand.NewChaCha8(key)
	rng := rand.New(src)

	users := make([]User, 0, count)
	for i := range count {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			// ChaCha8 reads never fail.
			panic(err)
		}

		first := firstNames[rng.IntN(len(firstNames))]
		last := lastNames[rng.IntN(len(lastNames))]
		username := fmt.Sprintf("%s.%s%d", first, last, rng.IntN(1000))

		users = append(users, User{
			ID:       id.String(),
			Username: username,
			Email:    fmt.Sprintf("%s.%s@%s", first, last, domains[rng.IntN(len(domains))]),
			Avatar:   fmt.Sprintf("https://avatars.example.com/u/%d.png", i),
			Password: randomPassword(rng, 8+rng.IntN(8)),
		})
	}
	return users
}

func randomPassword(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(passwordAlphabet[rng.IntN(len(passwordAlphabet))])
	}
	return b.String()
}
