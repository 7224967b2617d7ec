package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime  = time.Hour
	exchangeTimeout    = 30 * time.Second
)

type tokenResponse struct {
	IDToken string `json:"id_token"`
}

type serviceAccountProvider struct {
	clientEmail string
	projectID   string
	tokenURI    string
	keyID       string
	key         *rsa.PrivateKey

	client *utils.HTTPClient
	now    func() time.Time

	// mu also serializes exchanges so that concurrent callers for the same
	// audience share one round trip.
	mu     sync.Mutex
	tokens map[string]*oauth2.Token

	logger *logger.Logger
}

// NewServiceAccountProvider constructs a [TokenProvider] that signs RS256
// assertions with cfg.PrivateKey and exchanges them at cfg.TokenURI for
// identity tokens.
//
// Returns [ErrInvalidCredentials] if the client e-mail is empty or the key
// cannot be parsed.
func NewServiceAccountProvider(cfg config.GCP, logger *logger.Logger) (TokenProvider, error) {
	if cfg.ClientEmail == "" {
		return nil, fmt.Errorf("%w: empty client email", ErrInvalidCredentials)
	}

	key, err := utils.ParseRSAPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	tokenURI := cfg.TokenURI
	if tokenURI == "" {
		tokenURI = config.DefaultTokenURI
	}

	logger.Info().
		Str("client_email", cfg.ClientEmail).
		Str("project_id", cfg.ProjectID).
		Msg("service account identity provider created")

	return &serviceAccountProvider{
		clientEmail: cfg.ClientEmail,
		projectID:   cfg.ProjectID,
		tokenURI:    tokenURI,
		keyID:       cfg.PrivateKeyID,
		key:         key,
		client:      utils.NewHTTPClient(exchangeTimeout),
		now:         time.Now,
		tokens:      make(map[string]*oauth2.Token),
		logger:      logger,
	}, nil
}

// IDToken implements [TokenProvider].
func (p *serviceAccountProvider) IDToken(ctx context.Context, audience string) (string, error) {
	if audience == "" {
		return "", ErrEmptyAudience
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if tok := p.tokens[audience]; tok.Valid() {
		return tok.AccessToken, nil
	}

	tok, err := p.exchange(ctx, audience)
	if err != nil {
		return "", err
	}
	p.tokens[audience] = tok

	p.logger.ForContext(ctx).Debug().
		Str("audience", audience).
		Time("expiry", tok.Expiry).
		Msg("identity token refreshed")

	return tok.AccessToken, nil
}

func (p *serviceAccountProvider) exchange(ctx context.Context, audience string) (*oauth2.Token, error) {
	now := p.now()
	assertion, err := utils.SignRS256(jwt.MapClaims{
		"iss":             p.clientEmail,
		"sub":             p.clientEmail,
		"aud":             p.tokenURI,
		"target_audience": audience,
		"iat":             now.Unix(),
		"exp":             now.Add(assertionLifetime).Unix(),
	}, p.key, p.keyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrantType,
			"assertion":  assertion,
		}).
		Post(p.tokenURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTokenExchange,
			resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	var body tokenResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode token response: %w", ErrTokenExchange, err)
	}
	if body.IDToken == "" {
		return nil, ErrEmptyIDToken
	}

	expiry, err := utils.ExpiryFromJWT(body.IDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	return &oauth2.Token{
		AccessToken: body.IDToken,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}, nil
}
