package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// stateEntropyBytes is the amount of randomness in a generated state value.
// 24 bytes gives 192 bits of entropy, well beyond what is needed to make
// state values unguessable for CSRF protection.
const stateEntropyBytes = 24

// GenerateState returns an opaque, unguessable value for the authorization
// request's state parameter. The authorization server echoes it verbatim on
// the callback; compare the echo with StateEqual.
func GenerateState() (string, error) {
	raw := make([]byte, stateEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("security: generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// StateEqual compares a callback's echoed state with the value sent in the
// authorization request, in constant time.
func StateEqual(sent, echoed string) bool {
	return subtle.ConstantTimeCompare([]byte(sent), []byte(echoed)) == 1
}
