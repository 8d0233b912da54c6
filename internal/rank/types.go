package rank

import "github.com/kamusis/partner-cli/internal/profile"

// Result pairs a matched profile with its score. Score is always > 0.
type Result struct {
	Profile profile.Profile
	Score   int
}
