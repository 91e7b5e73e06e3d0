package ai

import "context"

// Completer is the outbound contract against the language-model service:
// one prompt in, free text (expected to contain JSON) out. An error means
// the service itself failed, which is terminal for the request — it is
// never recovered by local fallback parsing.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
