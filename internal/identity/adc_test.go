package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type failingSource struct{}

func (failingSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("metadata server unavailable")
}

func TestADCProvider_CreatesOneSourcePerAudience(t *testing.T) {
	created := map[string]int{}
	p := newADCProvider(func(_ context.Context, audience string) (oauth2.TokenSource, error) {
		created[audience]++
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: "token-for-" + audience,
			Expiry:      time.Now().Add(time.Hour),
		}), nil
	}, logger.Nop())

	for range 3 {
		tok, err := p.IDToken(context.Background(), "https://a.example.com")
		require.NoError(t, err)
		assert.Equal(t, "token-for-https://a.example.com", tok)
	}
	_, err := p.IDToken(context.Background(), "https://b.example.com")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"https://a.example.com": 1, "https://b.example.com": 1}, created)
}

func TestADCProvider_SourceOutlivesRequestContext(t *testing.T) {
	var sourceCtx context.Context
	p := newADCProvider(func(ctx context.Context, _ string) (oauth2.TokenSource, error) {
		sourceCtx = ctx
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "t"}), nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	_, err := p.IDToken(ctx, "https://a.example.com")
	require.NoError(t, err)
	cancel()

	assert.NoError(t, sourceCtx.Err())
}

func TestADCProvider_Errors(t *testing.T) {
	t.Run("empty audience", func(t *testing.T) {
		p := newADCProvider(nil, logger.Nop())
		_, err := p.IDToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyAudience)
	})

	t.Run("no credentials", func(t *testing.T) {
		p := newADCProvider(func(context.Context, string) (oauth2.TokenSource, error) {
			return nil, errors.New("could not find default credentials")
		}, logger.Nop())
		_, err := p.IDToken(context.Background(), "https://a.example.com")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token fetch fails", func(t *testing.T) {
		p := newADCProvider(func(context.Context, string) (oauth2.TokenSource, error) {
			return failingSource{}, nil
		}, logger.Nop())
		_, err := p.IDToken(context.Background(), "https://a.example.com")
		assert.ErrorIs(t, err, ErrTokenExchange)
	})
}

func TestNewTokenProvider_PicksImplementation(t *testing.T) {
	_, pemKey := newTestKey(t)

	sa, err := NewTokenProvider(config.GCP{ClientEmail: testClientEmail, PrivateKey: pemKey}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &serviceAccountProvider{}, sa)

	adc, err := NewTokenProvider(config.GCP{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &adcProvider{}, adc)
}
