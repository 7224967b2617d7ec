package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tender-search/internal/logger"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

type sourceFactory func(ctx context.Context, audience string) (oauth2.TokenSource, error)

type adcProvider struct {
	newSource sourceFactory

	mu      sync.Mutex
	sources map[string]oauth2.TokenSource

	logger *logger.Logger
}

// NewADCProvider constructs a [TokenProvider] backed by Application Default
// Credentials. Token sources are created lazily, one per audience, and cache
// their tokens internally.
func NewADCProvider(logger *logger.Logger) TokenProvider {
	logger.Info().Msg("application default credentials identity provider created")
	return newADCProvider(func(ctx context.Context, audience string) (oauth2.TokenSource, error) {
		return idtoken.NewTokenSource(ctx, audience)
	}, logger)
}

func newADCProvider(factory sourceFactory, logger *logger.Logger) *adcProvider {
	return &adcProvider{
		newSource: factory,
		sources:   make(map[string]oauth2.TokenSource),
		logger:    logger,
	}
}

// IDToken implements [TokenProvider].
func (p *adcProvider) IDToken(ctx context.Context, audience string) (string, error) {
	if audience == "" {
		return "", ErrEmptyAudience
	}

	src, err := p.source(ctx, audience)
	if err != nil {
		return "", err
	}

	tok, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	return tok.AccessToken, nil
}

func (p *adcProvider) source(ctx context.Context, audience string) (oauth2.TokenSource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if src, ok := p.sources[audience]; ok {
		return src, nil
	}

	// The source outlives the request that created it and refreshes with
	// the context it was built with.
	src, err := p.newSource(context.WithoutCancel(ctx), audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	p.sources[audience] = src

	p.logger.ForContext(ctx).Debug().
		Str("audience", audience).
		Msg("identity token source created")

	return src, nil
}
