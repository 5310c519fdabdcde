package repository

import "context"

// GeneratorRepository is the outbound text-generation service. Implementations
// return the generated Markdown document; any transport, auth or response
// shape problem is an error the caller recovers from with the fallback
// template.
type GeneratorRepository interface {
	GeneratePlan(ctx context.Context, city, category, subcategory, credential string) (string, error)
}
