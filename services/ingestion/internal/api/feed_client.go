package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"jobocr/common/cache"
	"jobocr/common/errors"
	"jobocr/common/telemetry"
	"jobocr/services/ingestion/internal/config"
	"jobocr/services/ingestion/internal/models"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("jobocr/ingestion/api")

// PostSourceClient reads posts from the OCR feed.
type PostSourceClient interface {
	ListPostIDs(ctx context.Context) (models.PostIDs, error)
	GetPost(ctx context.Context, id string) (*models.RawPost, error)
}

type postSourceClient struct {
	client  *http.Client
	logger  *zap.Logger
	baseURL string
	cache   cache.Cache
	ttl     time.Duration
}

func NewPostSourceClient(logger *zap.Logger, config *config.Config, postCache cache.Cache) PostSourceClient {
	return &postSourceClient{
		client: &http.Client{
			Timeout: config.OCRFeedTimeout,
		},
		logger:  logger,
		baseURL: config.OCRFeedBaseURL,
		cache:   postCache,
		ttl:     config.CacheTTL,
	}
}

// ListPostIDs returns the IDs currently offered by the feed, newest first.
// The list is never cached.
func (c *postSourceClient) ListPostIDs(ctx context.Context) (models.PostIDs, error) {
	ctx, span := tracer.Start(ctx, "ListPostIDs")
	defer span.End()

	endpoint := c.baseURL + "/posts"
	span.SetAttributes(telemetry.String("http.url", endpoint))

	var ids models.PostIDs
	if err := c.getJSON(ctx, endpoint, &ids); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(telemetry.Int("posts.count", len(ids)))
	c.logger.Debug("fetched post ids", zap.Int("count", len(ids)))
	return ids, nil
}

func (c *postSourceClient) GetPost(ctx context.Context, id string) (*models.RawPost, error) {
	ctx, span := tracer.Start(ctx, "GetPost")
	defer span.End()
	span.SetAttributes(telemetry.String("post.id", id))

	if id == "" {
		return nil, errors.InvalidInput("empty post id", nil)
	}

	cacheKey := cache.Key("feed", "post", id)
	var cachedPost models.RawPost

	err := c.cache.Get(ctx, cacheKey, &cachedPost)
	if err == nil {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		c.logger.Debug("cache hit", zap.String("id", id))
		return &cachedPost, nil
	} else if err != cache.ErrNotFound {
		span.SetAttributes(telemetry.String("cache.result", "error"))
		span.RecordError(err)
		c.logger.Warn("cache error", zap.Error(err))
	} else {
		span.SetAttributes(telemetry.String("cache.result", "miss"))
	}

	endpoint := fmt.Sprintf("%s/posts/%s", c.baseURL, url.PathEscape(id))
	c.logger.Debug("cache miss, fetching post", zap.String("id", id), zap.String("url", endpoint))

	var post models.RawPost
	if err := c.getJSON(ctx, endpoint, &post); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if post.ID == "" {
		post.ID = id
	}

	if err := c.cache.Set(ctx, cacheKey, post, c.ttl); err != nil {
		c.logger.Warn("failed to cache post", zap.String("id", id), zap.Error(err))
	}

	return &post, nil
}

func (c *postSourceClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Internal("creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("failed to execute request", zap.String("url", endpoint), zap.Error(err))
		return errors.Unavailable("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if err := statusError(resp.StatusCode); err != nil {
		c.logger.Warn("unexpected status code",
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode))
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response", zap.String("url", endpoint), zap.Error(err))
		return errors.Internal("decoding response", err)
	}
	return nil
}

func statusError(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.NotFound("post not found", nil)
	case code == http.StatusTooManyRequests:
		return errors.RateLimit("feed rate limit exceeded", nil)
	case code >= 500:
		return errors.Unavailable(fmt.Sprintf("feed returned status %d", code), nil)
	default:
		return errors.Internal(fmt.Sprintf("unexpected status code: %d", code), nil)
	}
}
