// README: Primary→fallback invocation policy over two text-generation backends.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrGenerationUnavailable is returned when every configured backend failed.
// It is the only fatal error in the whole turn pipeline.
var ErrGenerationUnavailable = errors.New("generation unavailable: all LLM backends failed")

// Gateway attempts the primary backend and, on any error, the fallback with
// the same arguments. The handoff happens at most once per call; retries and
// backoff, if any, live inside the individual backend clients.
type Gateway struct {
	primary  Provider
	fallback Provider
}

func NewGateway(primary, fallback Provider) *Gateway {
	return &Gateway{primary: primary, fallback: fallback}
}

// Invoke runs the ordered-attempt policy. The fallback only starts after the
// primary has failed; the two are never raced.
func (g *Gateway) Invoke(ctx context.Context, messages []Message, temperature float32, maxTokens int) (string, error) {
	var attemptErrs []string

	for _, p := range []Provider{g.primary, g.fallback} {
		if p == nil {
			continue
		}
		text, err := p.Complete(ctx, messages, temperature, maxTokens)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if err == nil {
			err = fmt.Errorf("empty completion")
		}
		log.Printf("llm: %s failed: %v", p.Name(), err)
		attemptErrs = append(attemptErrs, fmt.Sprintf("%s: %v", p.Name(), err))
	}

	if len(attemptErrs) == 0 {
		return "", fmt.Errorf("%w: no backends configured", ErrGenerationUnavailable)
	}
	return "", fmt.Errorf("%w: %s", ErrGenerationUnavailable, strings.Join(attemptErrs, "; "))
}
