package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobocr/common/errors"
	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/parser"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/processor"
	"jobocr/services/processing/internal/textnorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingBatch struct{}

func (failingBatch) ExtractAll(context.Context, []models.RawText) ([]models.ExtractionResult, error) {
	return nil, context.Canceled
}

func newTestRouter(t *testing.T, batch BatchExtraction) *gin.Engine {
	t.Helper()
	pipeline := parser.NewPipeline(patterns.Default(), textnorm.DefaultOptions())
	proc := processor.NewJobProcessor(zap.NewNop(), pipeline, nil, nil, time.Hour)
	if batch == nil {
		batch = processor.NewBatchExtractor(proc, 2, zap.NewNop())
	}
	return NewRouter(NewHandler(proc, batch, 3), zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) (T, *APIError) {
	t.Helper()
	var resp struct {
		Success bool      `json:"success"`
		Data    T         `json:"data"`
		Error   *APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resp.Error == nil, resp.Success)
	return resp.Data, resp.Error
}

func TestExtractEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/v1/extract", `{"caption":"Oferta de trabajo en Acme","ocr_text":""}`)

	require.Equal(t, http.StatusOK, w.Code)
	res, apiErr := decode[models.ExtractionResult](t, w)
	assert.Nil(t, apiErr)
	assert.Equal(t, "Acme", models.Deref(res.Company))
	assert.True(t, res.IsOpen)
}

func TestExtractEndpointMalformedBody(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/v1/extract", `{"caption":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, apiErr := decode[json.RawMessage](t, w)
	require.NotNil(t, apiErr)
	assert.Equal(t, string(errors.ErrTypeInvalidInput), apiErr.Code)
}

func TestExtractBatchEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	body := `{"posts":[{"caption":"Oferta de trabajo en Acme"},{"caption":"Oferta de trabajo en Globex"}]}`
	w := doJSON(t, r, http.MethodPost, "/v1/extract/batch", body)

	require.Equal(t, http.StatusOK, w.Code)
	results, _ := decode[[]models.ExtractionResult](t, w)
	require.Len(t, results, 2)
	assert.Equal(t, "Acme", models.Deref(results[0].Company))
	assert.Equal(t, "Globex", models.Deref(results[1].Company))
}

func TestExtractBatchTooLarge(t *testing.T) {
	r := newTestRouter(t, nil)

	var posts []string
	for i := 0; i < 4; i++ {
		posts = append(posts, fmt.Sprintf(`{"caption":"post %d"}`, i))
	}
	w := doJSON(t, r, http.MethodPost, "/v1/extract/batch", `{"posts":[`+strings.Join(posts, ",")+`]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, apiErr := decode[json.RawMessage](t, w)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "3")
}

func TestExtractBatchInterrupted(t *testing.T) {
	r := newTestRouter(t, failingBatch{})

	w := doJSON(t, r, http.MethodPost, "/v1/extract/batch", `{"posts":[{"caption":"x"}]}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	_, apiErr := decode[json.RawMessage](t, w)
	require.NotNil(t, apiErr)
	assert.Equal(t, string(errors.ErrTypeUnavailable), apiErr.Code)
}

func TestSkillsEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/v1/skills", `{"ocr_text":"Requisitos: Python, Docker","limit":5}`)

	require.Equal(t, http.StatusOK, w.Code)
	got, _ := decode[skillsResponse](t, w)
	assert.Equal(t, []string{"python"}, got.Categories["programming_languages"])
	assert.Contains(t, got.TopSkills, "python")
	assert.LessOrEqual(t, len(got.TopSkills), 5)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)
	doJSON(t, r, http.MethodPost, "/v1/extract", `{"caption":"Oferta de trabajo en Acme"}`)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got, _ := decode[healthResponse](t, w)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, patterns.Version, got.RulesVersion)
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, fmt.Errorf("dial tcp 10.0.0.3:9000: refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	_, apiErr := decode[json.RawMessage](t, w)
	require.NotNil(t, apiErr)
	assert.Equal(t, string(errors.ErrTypeInternal), apiErr.Code)
}

func TestStatusFor(t *testing.T) {
	cases := map[errors.ErrorType]int{
		errors.ErrTypeInvalidInput: http.StatusBadRequest,
		errors.ErrTypeNotFound:     http.StatusNotFound,
		errors.ErrTypeUnauthorized: http.StatusUnauthorized,
		errors.ErrTypeRateLimit:    http.StatusTooManyRequests,
		errors.ErrTypeUnavailable:  http.StatusServiceUnavailable,
		errors.ErrTypeInternal:     http.StatusInternalServerError,
	}
	for errType, want := range cases {
		assert.Equal(t, want, statusFor(errType), errType)
	}
}

