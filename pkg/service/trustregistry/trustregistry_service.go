/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustregistry

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/trustbloc/wallet-trust/internal/logfields"
	"github.com/trustbloc/wallet-trust/pkg/cache"
	"github.com/trustbloc/wallet-trust/pkg/did"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics"
	"github.com/trustbloc/wallet-trust/pkg/observability/metrics/noop"
	"github.com/trustbloc/wallet-trust/pkg/trust"
)

var logger = log.New("trust-registry")

const (
	metadataPath      = "/v2/metadata"
	authorizationPath = "/v2/authorization"
	recognitionPath   = "/v2/recognition"

	metadataTTL      = time.Hour
	authorizationTTL = time.Minute
	recognitionTTL   = time.Minute

	defaultRecognitionResource = "governance"

	opMetadata      = "metadata"
	opAuthorization = "authorization"
	opRecognition   = "recognition"

	unreadableBody = "could not read error body"
)

var _ ServiceInterface = (*Service)(nil)

// Service queries a trust registry and caches its answers.
type Service struct {
	url            string
	ecosystemDID   string
	localAnchorDID string
	cache          *cache.Cache
	sharedCache    SharedCache
	httpClient     httpClient
	logger         Logger
	metrics        metrics.Metrics
	retryCount     int
	requestTimeout time.Duration
	now            func() time.Time
}

// NewService returns a new Service instance.
func NewService(cfg *Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trust registry config: %w", err)
	}

	s := &Service{
		url:            trimVersionSuffix(cfg.URL),
		ecosystemDID:   cfg.EcosystemDID,
		cache:          cache.New(cfg.cacheTTL()),
		sharedCache:    cfg.SharedCache,
		httpClient:     cfg.HTTPClient,
		logger:         cfg.Logger,
		metrics:        cfg.Metrics,
		retryCount:     cfg.retryCount(),
		requestTimeout: cfg.requestTimeout(),
		now:            cfg.Now,
	}

	if cfg.LocalAnchor != nil && cfg.LocalAnchor.DID != "" {
		s.localAnchorDID = cfg.LocalAnchor.DID
	}

	if s.logger == nil {
		s.logger = logger
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.httpClient == nil {
		s.httpClient = newHTTPClient(cfg.OAuth2, cfg.TLSConfig, s.metrics)
	}

	return s, nil
}

func newHTTPClient(oauthCfg *OAuth2Config, tlsConfig *tls.Config, m metrics.Metrics) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport

	if tlsConfig != nil {
		t := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
		t.TLSClientConfig = tlsConfig
		transport = t
	}

	base := &http.Client{Transport: m.InstrumentHTTPTransport(transport)}

	if oauthCfg == nil {
		return base
	}

	cc := &clientcredentials.Config{
		ClientID:     oauthCfg.ClientID,
		ClientSecret: oauthCfg.ClientSecret,
		TokenURL:     oauthCfg.TokenURL,
		Scopes:       oauthCfg.Scopes,
	}

	return cc.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
}

// trimVersionSuffix drops a trailing "/v2" or "/v2/" so that endpoint paths can be appended.
func trimVersionSuffix(u string) string {
	return strings.TrimSuffix(strings.TrimSuffix(u, "/"), "/v2")
}

// GetMetadata returns the registry metadata, cached for an hour.
func (s *Service) GetMetadata(ctx context.Context) (*Metadata, error) {
	return lookup(ctx, s, cache.QueryMetadata, cache.Key(cache.QueryMetadata), metadataTTL,
		func(ctx context.Context) (*Metadata, error) {
			result := &Metadata{}

			if err := s.fetch(ctx, opMetadata, http.MethodGet, s.url+metadataPath, nil, result); err != nil {
				return nil, err
			}

			return result, nil
		},
	)
}

// RefreshMetadata drops the cached metadata and fetches it again.
func (s *Service) RefreshMetadata(ctx context.Context) (*Metadata, error) {
	key := cache.Key(cache.QueryMetadata)

	s.cache.Delete(key)

	if s.sharedCache != nil {
		if err := s.sharedCache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete metadata from shared cache", log.WithError(err))
		}
	}

	return s.GetMetadata(ctx)
}

// IsAvailable reports whether the registry answers metadata requests and is operational.
func (s *Service) IsAvailable(ctx context.Context) bool {
	metadata, err := s.GetMetadata(ctx)
	if err != nil {
		return false
	}

	return metadata.Status == StatusOperational
}

// RequireAvailable returns a SERVICE_UNAVAILABLE error when the registry is reachable but not operational.
func (s *Service) RequireAvailable(ctx context.Context) error {
	metadata, err := s.GetMetadata(ctx)
	if err != nil {
		return err
	}

	if metadata.Status != StatusOperational {
		return &Error{
			Code:    CodeServiceUnavailable,
			Message: fmt.Sprintf("trust registry status is %s", metadata.Status),
			URL:     s.url + metadataPath,
		}
	}

	return nil
}

// CheckIssuerAuthorization asks whether issuerDID may issue credentials of credentialType.
func (s *Service) CheckIssuerAuthorization(
	ctx context.Context,
	issuerDID, credentialType string,
) (*AuthorizationResponse, error) {
	return s.checkAuthorization(ctx, issuerDID, trust.ActionIssue, credentialType)
}

// CheckVerifierAuthorization asks whether verifierDID may verify credentials of credentialType.
func (s *Service) CheckVerifierAuthorization(
	ctx context.Context,
	verifierDID, credentialType string,
) (*AuthorizationResponse, error) {
	return s.checkAuthorization(ctx, verifierDID, trust.ActionVerify, credentialType)
}

func (s *Service) checkAuthorization(
	ctx context.Context,
	entityDID string,
	action trust.Action,
	credentialType string,
) (*AuthorizationResponse, error) {
	entityID, err := normalizeDID(entityDID)
	if err != nil {
		return nil, err
	}

	authorityID, err := normalizeDID(s.ecosystemDID)
	if err != nil {
		return nil, err
	}

	key := cache.Key(cache.QueryAuthorization, entityID, string(action), credentialType)

	return lookup(ctx, s, cache.QueryAuthorization, key, authorizationTTL,
		func(ctx context.Context) (*AuthorizationResponse, error) {
			req := &AuthorizationRequest{
				EntityID:    entityID,
				AuthorityID: authorityID,
				Action:      string(action),
				Resource:    credentialType,
				Context:     s.requestContext(),
			}

			result := &AuthorizationResponse{}

			if err := s.post(ctx, opAuthorization, authorizationPath, req, result); err != nil {
				return nil, err
			}

			return result, nil
		},
	)
}

// CheckRecognition asks whether the local anchor recognizes foreignAuthorityDID. An empty resource
// is sent as "governance".
func (s *Service) CheckRecognition(
	ctx context.Context,
	foreignAuthorityDID, resource string,
) (*RecognitionResponse, error) {
	entityID, err := normalizeDID(foreignAuthorityDID)
	if err != nil {
		return nil, err
	}

	anchor := s.localAnchorDID
	if anchor == "" {
		anchor = s.ecosystemDID
	}

	authorityID, err := normalizeDID(anchor)
	if err != nil {
		return nil, err
	}

	if resource == "" {
		resource = defaultRecognitionResource
	}

	key := cache.Key(cache.QueryRecognition, entityID, resource)

	return lookup(ctx, s, cache.QueryRecognition, key, recognitionTTL,
		func(ctx context.Context) (*RecognitionResponse, error) {
			req := &RecognitionRequest{
				EntityID:    entityID,
				AuthorityID: authorityID,
				Action:      string(trust.ActionRecognize),
				Resource:    resource,
				Context:     s.requestContext(),
			}

			result := &RecognitionResponse{}

			if err := s.post(ctx, opRecognition, recognitionPath, req, result); err != nil {
				return nil, err
			}

			return result, nil
		},
	)
}

// ClearCache drops every cached response. Requests already in flight are not affected.
func (s *Service) ClearCache(ctx context.Context) {
	s.cache.Clear()

	if s.sharedCache != nil {
		if err := s.sharedCache.Clear(ctx); err != nil {
			s.logger.Warn("Failed to clear shared cache", log.WithError(err))
		}
	}
}

func (s *Service) requestContext() *RequestContext {
	return &RequestContext{Time: s.now().UTC().Format(time.RFC3339)}
}

func normalizeDID(id string) (string, error) {
	normalized := did.Normalize(id)

	if err := did.Validate(normalized); err != nil {
		return "", &Error{
			Code:    CodeInvalidDID,
			Message: fmt.Sprintf("invalid did %q", id),
			Err:     err,
		}
	}

	return normalized, nil
}

// lookup serves a query from the local cache, then from the shared cache, and finally from the registry.
func lookup[T any](
	ctx context.Context,
	s *Service,
	queryType cache.QueryType,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (*T, error),
) (*T, error) {
	if v, ok := cache.GetAs[T](s.cache, key); ok {
		s.metrics.CacheHit(string(queryType))

		return &v, nil
	}

	if s.sharedCache != nil {
		var v T

		found, err := s.sharedCache.Get(ctx, key, &v)
		if err != nil {
			s.logger.Warn("Failed to read shared cache", logfields.WithCacheKey(key), log.WithError(err))
		} else if found {
			s.metrics.CacheHit(string(queryType))
			s.cache.SetWithTTL(key, v, ttl)

			return &v, nil
		}
	}

	s.metrics.CacheMiss(string(queryType))

	result, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetWithTTL(key, *result, ttl)

	if s.sharedCache != nil {
		if err = s.sharedCache.Set(ctx, key, result, ttl); err != nil {
			s.logger.Warn("Failed to write shared cache", logfields.WithCacheKey(key), log.WithError(err))
		}
	}

	return result, nil
}

func (s *Service) post(ctx context.Context, op, path string, req, result interface{}) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	return s.fetch(ctx, op, http.MethodPost, s.url+path, body, result)
}

// fetch performs the request, retrying immediately up to retryCount times on network errors,
// timeouts and non-2xx statuses, and decodes a successful JSON response into result.
func (s *Service) fetch(ctx context.Context, op, method, url string, body []byte, result interface{}) error {
	start := time.Now()

	defer func() {
		s.metrics.RegistryRequestTime(op, time.Since(start))
	}()

	attempt := 0

	err := backoff.RetryNotify(
		func() error {
			attempt++

			return s.doAttempt(ctx, attempt, method, url, body, result)
		},
		backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(s.retryCount)), ctx),
		func(err error, _ time.Duration) {
			s.logger.Warn(fmt.Sprintf("Request failed, retrying (%d/%d)", attempt, s.retryCount),
				log.WithURL(url),
				logfields.WithMethod(method),
				log.WithError(err),
			)
		},
	)
	if err != nil {
		regErr := toRegistryError(ctx, url, err)

		s.logger.Error("Request failed after retries",
			log.WithURL(url),
			logfields.WithMethod(method),
			logfields.WithAttempt(attempt),
			log.WithError(regErr),
		)

		s.metrics.RegistryRequestFailed(op, string(regErr.Code))

		return regErr
	}

	if attempt > 1 {
		s.logger.Info("Request succeeded after retry",
			log.WithURL(url),
			logfields.WithMethod(method),
			logfields.WithAttempt(attempt),
		)
	}

	return nil
}

func (s *Service) doAttempt(
	ctx context.Context,
	attempt int,
	method, url string,
	body []byte,
	result interface{},
) error {
	reqCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	s.logger.Info("Outgoing request",
		log.WithURL(url),
		logfields.WithMethod(method),
		logfields.WithRequestBody(body),
		logfields.WithAttempt(attempt),
	)

	var reqBody io.Reader = http.NoBody
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, url, reqBody)
	if err != nil {
		return backoff.Permanent(&Error{
			Code:    CodeNetworkError,
			Message: fmt.Sprintf("create request: %v", err),
			URL:     url,
			Err:     err,
		})
	}

	req.Header.Add("content-type", "application/json")
	req.Header.Add("accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return &Error{Code: CodeTimeout, Message: "Request timeout", URL: url, Err: err}
		}

		return &Error{Code: CodeNetworkError, Message: err.Error(), URL: url, Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			b = []byte(unreadableBody)
		}

		s.logger.Error("Trust registry request failed",
			log.WithURL(url),
			logfields.WithMethod(method),
			log.WithHTTPStatus(resp.StatusCode),
			logfields.WithResponseBody(b),
			logfields.WithAttempt(attempt),
		)

		return &Error{
			Code:       CodeInvalidResponse,
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return &Error{Code: CodeTimeout, Message: "Request timeout", URL: url, Err: err}
		}

		return backoff.Permanent(&Error{
			Code:       CodeInvalidResponse,
			Message:    fmt.Sprintf("decode response: %v", err),
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        err,
		})
	}

	return nil
}

// toRegistryError converts the outcome of the retry loop into an *Error. The loop returns the context
// error when the caller gave up.
func toRegistryError(ctx context.Context, url string, err error) *Error {
	var regErr *Error

	if errors.As(err, &regErr) {
		return regErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: CodeTimeout, Message: "Request timeout", URL: url, Err: err}
	}

	if ctx.Err() != nil {
		return &Error{Code: CodeNetworkError, Message: fmt.Sprintf("request aborted: %v", err), URL: url, Err: err}
	}

	return &Error{Code: CodeNetworkError, Message: err.Error(), URL: url, Err: err}
}
