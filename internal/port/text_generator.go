package port

import "context"

// TextGenerator is the generative model collaborator. Implementations send a
// prompt to a remote model and return its raw text response. The call blocks
// until the provider responds; timeout policy belongs to the implementation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
