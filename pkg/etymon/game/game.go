package game

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/etymon/pkg/etymon/normalize"
	"github.com/cognicore/etymon/pkg/etymon/roots"
)

// Session tracks one root-guessing practice run. State is process-local
// and resets when the session is discarded; nothing is persisted.
type Session struct {
	id      string
	lexicon *roots.Lexicon

	score  int
	rounds int
}

// GuessResult reports the outcome of one round.
type GuessResult struct {
	// Guess is the normalized, lowercased form that was checked.
	Guess string
	// Correct is true iff the guess is an exact lexicon key.
	Correct bool
	// Explanation is the origin text for a correct guess.
	Explanation string
}

// NewSession starts a fresh session over the given lexicon.
func NewSession(lexicon *roots.Lexicon) *Session {
	return &Session{
		id:      ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String(),
		lexicon: lexicon,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Score returns the number of correct guesses so far.
func (s *Session) Score() int { return s.score }

// Rounds returns the number of rounds played so far.
func (s *Session) Rounds() int { return s.rounds }

// Check plays one round: the guess is normalized and lowercased, and
// scores iff it exists as an exact key in the lexicon.
func (s *Session) Check(guess string) GuessResult {
	s.rounds++

	g := normalize.Key(guess)
	explanation, ok := s.lexicon.Explain(g)
	if ok {
		s.score++
	}
	return GuessResult{Guess: g, Correct: ok, Explanation: explanation}
}
