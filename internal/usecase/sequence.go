package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"assistec/internal/usecase/interfaces"
)

var ErrSequenceExhausted = errors.New("sequence generation exhausted retries")

const sequenceMaxAttempts = 5

// nextDocumentNumber renders the next human-readable number for a prefix,
// e.g. OS-260800042. The counter key embeds the year-month so sequences
// restart every calendar month; the repository guarantees atomicity, the
// bounded loop only absorbs transient store errors.
func nextDocumentNumber(ctx context.Context, seq interfaces.ISequenceRepository, prefix string, now time.Time) (string, error) {
	key := fmt.Sprintf("%s-%s", prefix, now.UTC().Format("0601"))

	var lastErr error
	for attempt := 1; attempt <= sequenceMaxAttempts; attempt++ {
		n, err := seq.Next(ctx, key)
		if err == nil {
			return fmt.Sprintf("%s%05d", key, n), nil
		}
		lastErr = err
		log.Printf("[sequence][usecase] next failed key=%s attempt=%d err=%v", key, attempt, err)
	}
	return "", fmt.Errorf("%w: key=%s last=%v", ErrSequenceExhausted, key, lastErr)
}

// systemClock is the production Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall clock used by route wiring.
func SystemClock() interfaces.Clock { return systemClock{} }
