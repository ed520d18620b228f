package services

import "context"

// QuoteClient fetches a random quote for a category from an external
// provider and returns the raw payload.
type QuoteClient interface {
	Random(ctx context.Context, category string) ([]byte, error)
}

// GifClient fetches a random GIF for a search term from an external
// provider and returns the raw payload.
type GifClient interface {
	Random(ctx context.Context, tag string) ([]byte, error)
}

// Recommender maps a mood rating to provider parameters and delegates
// the actual fetch. It holds no state and never touches the mood store;
// a provider failure cannot affect persisted entries.
type Recommender struct {
	quotes QuoteClient
	gifs   GifClient
}

func NewRecommender(quotes QuoteClient, gifs GifClient) *Recommender {
	return &Recommender{quotes: quotes, gifs: gifs}
}

// QuoteCategory maps low ratings to motivational quotes and everything
// else to inspirational ones.
func QuoteCategory(moodRating int) string {
	if moodRating <= 2 {
		return "motivational"
	}
	return "inspirational"
}

// GifSearchTerm maps a rating to a Giphy search term. Out-of-table
// values fall back to "happy".
func GifSearchTerm(moodRating int) string {
	switch moodRating {
	case 1:
		return "cheer up"
	case 2:
		return "smile"
	case 3:
		return "content"
	case 4:
		return "happy"
	case 5:
		return "excited"
	default:
		return "happy"
	}
}

// QuoteFor returns the quote provider's payload for the rating's
// category, unmodified. Failures are wrapped as ProviderError; there is
// no retry.
func (r *Recommender) QuoteFor(ctx context.Context, moodRating int) ([]byte, error) {
	payload, err := r.quotes.Random(ctx, QuoteCategory(moodRating))
	if err != nil {
		return nil, &ProviderError{Provider: "quote", Err: err}
	}
	return payload, nil
}

// GifFor returns the GIF provider's payload for the rating's search
// term, unmodified. Failures are wrapped as ProviderError; there is no
// retry.
func (r *Recommender) GifFor(ctx context.Context, moodRating int) ([]byte, error) {
	payload, err := r.gifs.Random(ctx, GifSearchTerm(moodRating))
	if err != nil {
		return nil, &ProviderError{Provider: "gif", Err: err}
	}
	return payload, nil
}
