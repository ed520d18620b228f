package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteClient struct {
	gotCategory string
	payload     []byte
	err         error
}

func (f *fakeQuoteClient) Random(ctx context.Context, category string) ([]byte, error) {
	f.gotCategory = category
	return f.payload, f.err
}

type fakeGifClient struct {
	gotTag  string
	payload []byte
	err     error
}

func (f *fakeGifClient) Random(ctx context.Context, tag string) ([]byte, error) {
	f.gotTag = tag
	return f.payload, f.err
}

func TestQuoteCategory(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{1, "motivational"},
		{2, "motivational"},
		{3, "inspirational"},
		{4, "inspirational"},
		{5, "inspirational"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteCategory(tt.rating), "rating %d", tt.rating)
	}
}

func TestGifSearchTerm(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{1, "cheer up"},
		{2, "smile"},
		{3, "content"},
		{4, "happy"},
		{5, "excited"},
		{0, "happy"},
		{99, "happy"},
		{-1, "happy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GifSearchTerm(tt.rating), "rating %d", tt.rating)
	}
}

func TestQuoteFor_PassesPayloadThrough(t *testing.T) {
	quotes := &fakeQuoteClient{payload: []byte(`{"content":"keep going"}`)}
	rec := NewRecommender(quotes, &fakeGifClient{})

	payload, err := rec.QuoteFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, `{"content":"keep going"}`, string(payload))
	assert.Equal(t, "motivational", quotes.gotCategory)
}

func TestQuoteFor_WrapsProviderFailure(t *testing.T) {
	quotes := &fakeQuoteClient{err: errors.New("connection refused")}
	rec := NewRecommender(quotes, &fakeGifClient{})

	_, err := rec.QuoteFor(context.Background(), 5)
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "quote", providerErr.Provider)
}

func TestGifFor_PassesPayloadThrough(t *testing.T) {
	gifs := &fakeGifClient{payload: []byte(`{"data":{"url":"https://giphy.example/x"}}`)}
	rec := NewRecommender(&fakeQuoteClient{}, gifs)

	payload, err := rec.GifFor(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"url":"https://giphy.example/x"}}`, string(payload))
	assert.Equal(t, "smile", gifs.gotTag)
}

func TestGifFor_WrapsProviderFailure(t *testing.T) {
	gifs := &fakeGifClient{err: errors.New("timeout")}
	rec := NewRecommender(&fakeQuoteClient{}, gifs)

	_, err := rec.GifFor(context.Background(), 3)
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "gif", providerErr.Provider)
}
