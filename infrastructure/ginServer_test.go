package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ohppos.io/entities"
	"ohppos.io/infrastructure/env"
	fake_payment_processor "ohppos.io/infrastructure/payments/fake"
	payment_types "ohppos.io/infrastructure/payments/types"
	"ohppos.io/infrastructure/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const deviceKey = "ipad-front-desk-7c21"

func testConfig() *env.Config {
	return &env.Config{
		Mode: entities.TestMode,
		Credentials: entities.Credentials{
			SecretKey:  "sk_test_123",
			LocationID: "tml_test",
		},
		APIKeys:             []string{deviceKey, "ipad-gallery-0001"},
		RateLimitPerMinute:  60,
		RateLimitStore:      env.MemoryCounterStore,
		SimulatedCardNumber: env.DEFAULT_SIMULATED_CARD_NUMBER,
		HealthRatePerSecond: 5,
		Port:                "0",
		GinMode:             gin.TestMode,
	}
}

type harness struct {
	router    *gin.Engine
	processor *fake_payment_processor.FakePaymentProcessor
}

func newHarness(config *env.Config) *harness {
	processor := &fake_payment_processor.FakePaymentProcessor{}
	return &harness{
		router:    NewRouter(config, processor, ratelimit.NewMemoryStore(time.Minute)),
		processor: processor,
	}
}

type requestOptions struct {
	body        string
	key         string
	keyHeader   string
	idempotency string
	client      string
}

func (h *harness) do(method string, path string, opts requestOptions) *httptest.ResponseRecorder {
	var req *http.Request
	if opts.body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(opts.body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if opts.key != "" {
		header := opts.keyHeader
		if header == "" {
			header = "X-Api-Key"
		}
		req.Header.Set(header, opts.key)
	}
	if opts.idempotency != "" {
		req.Header.Set("Idempotency-Key", opts.idempotency)
	}
	if opts.client != "" {
		req.Header.Set("X-Forwarded-For", opts.client)
	}
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), recorder.Body.String())
	return body
}

func TestHealthIsOpen(t *testing.T) {
	h := newHarness(testConfig())
	recorder := h.do(http.MethodGet, "/health", requestOptions{})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "POS backend running in test mode", body["message"])
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
}

func TestGatedRoutesRejectMissingOrWrongCredential(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/payments", `{"amount":100,"currency":"usd"}`},
		{http.MethodPost, "/api/terminal/connection_token", ""},
		{http.MethodPost, "/api/terminal/charge", `{"payment_intent_id":"pi_1"}`},
		{http.MethodGet, "/api/payment_intents/pi_1", ""},
	}
	for _, route := range routes {
		for _, key := range []string{"", "not-a-device"} {
			t.Run(fmt.Sprintf("%s %s key=%q", route.method, route.path, key), func(t *testing.T) {
				h := newHarness(testConfig())
				recorder := h.do(route.method, route.path, requestOptions{
					body:        route.body,
					key:         key,
					idempotency: "idem-1",
				})
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Equal(t, "Unauthorized", decode(t, recorder)["error"])
				assert.Zero(t, h.processor.CallCount())
			})
		}
	}
}

func TestGateRefusesEverythingWhenNoKeysConfigured(t *testing.T) {
	config := testConfig()
	config.APIKeys = nil
	h := newHarness(config)

	recorder := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{key: "anything"})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Zero(t, h.processor.CallCount())
}

func TestGateAcceptsSingleKeyAndDeviceHeader(t *testing.T) {
	config := testConfig()
	config.APIKeys = nil
	config.APIKey = "shared-secret"
	h := newHarness(config)

	recorder := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{key: "shared-secret", keyHeader: "X-Device-Key"})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPostWithoutIdempotencyKeyIsRejected(t *testing.T) {
	h := newHarness(testConfig())
	for _, path := range []string{"/api/payments", "/api/terminal/connection_token", "/api/terminal/charge"} {
		recorder := h.do(http.MethodPost, path, requestOptions{
			body: `{"amount":100,"currency":"usd","payment_intent_id":"pi_1"}`,
			key:  deviceKey,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, path)
		assert.Equal(t, "Missing Idempotency-Key header", decode(t, recorder)["error"])
	}
	assert.Zero(t, h.processor.CallCount())
}

func TestRateLimitWindow(t *testing.T) {
	config := testConfig()
	config.RateLimitPerMinute = 3
	h := newHarness(config)

	for i := 1; i <= 3; i++ {
		recorder := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{key: deviceKey, client: "203.0.113.7:5000, 10.0.0.1"})
		require.Equal(t, http.StatusOK, recorder.Code, "request %d", i)
		assert.Equal(t, "3", recorder.Header().Get("RateLimit-Limit"))
		assert.Equal(t, fmt.Sprint(3-i), recorder.Header().Get("RateLimit-Remaining"))
	}

	recorder := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{key: deviceKey, client: "203.0.113.7"})
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "0", recorder.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, recorder.Header().Get("Retry-After"))
	assert.Len(t, h.processor.CallsTo("GetPaymentIntent"), 3)

	other := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{key: deviceKey, client: "198.51.100.9"})
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestUnauthenticatedTrafficDoesNotSpendRateBudget(t *testing.T) {
	config := testConfig()
	config.RateLimitPerMinute = 1
	h := newHarness(config)

	for i := 0; i < 5; i++ {
		recorder := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{client: "203.0.113.7"})
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
	}
	recorder := h.do(http.MethodGet, "/api/payment_intents/pi_1", requestOptions{key: deviceKey, client: "203.0.113.7"})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreatePayment(t *testing.T) {
	h := newHarness(testConfig())
	recorder := h.do(http.MethodPost, "/api/payments", requestOptions{
		body:        `{"amount":1500,"currency":"usd","category":"Concessions","art_number":17}`,
		key:         deviceKey,
		idempotency: "idem-create-1",
	})

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Equal(t, map[string]any{"id": "pi_fake_123", "status": "requires_payment_method"}, decode(t, recorder))

	calls := h.processor.CallsTo("CreatePaymentIntent")
	require.Len(t, calls, 1)
	params := calls[0].Args[0].(payment_types.CreatePaymentIntentParams)
	assert.Equal(t, "OHP CONCESSIONS", params.StatementDescriptorSuffix)
	assert.Equal(t, "OHP POS - Concessions", params.Description)
	assert.Equal(t, "17", params.Metadata["art_number"])
	assert.Equal(t, "…7c21", params.Metadata["device"])
}

func TestCreatePaymentValidation(t *testing.T) {
	bodies := []string{
		`{"currency":"usd"}`,
		`{"amount":100}`,
		`{}`,
		`not json`,
	}
	for _, body := range bodies {
		h := newHarness(testConfig())
		recorder := h.do(http.MethodPost, "/api/payments", requestOptions{body: body, key: deviceKey, idempotency: "idem"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, body)
		assert.Zero(t, h.processor.CallCount(), body)
	}
}

func TestProcessorFailureIsRelayed(t *testing.T) {
	h := newHarness(testConfig())
	h.processor.CreateIntentErr = &payment_types.ProcessorError{Message: "Amount must be at least 50 cents"}

	recorder := h.do(http.MethodPost, "/api/payments", requestOptions{
		body:        `{"amount":10,"currency":"usd"}`,
		key:         deviceKey,
		idempotency: "idem",
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Amount must be at least 50 cents", decode(t, recorder)["error"])
}

func TestConnectionToken(t *testing.T) {
	h := newHarness(testConfig())
	recorder := h.do(http.MethodPost, "/api/terminal/connection_token", requestOptions{key: deviceKey, idempotency: "idem"})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pst_test_secret", decode(t, recorder)["secret"])

	h.processor.ConnectionErr = errors.New("api unreachable")
	recorder = h.do(http.MethodPost, "/api/terminal/connection_token", requestOptions{key: deviceKey, idempotency: "idem"})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestChargeInTestModeUsesSimulatedReader(t *testing.T) {
	config := testConfig()
	config.SimulateCard = true
	h := newHarness(config)
	h.processor.PresentCardErr = errors.New("simulated reader offline")

	recorder := h.do(http.MethodPost, "/api/terminal/charge", requestOptions{
		body:        `{"payment_intent_id":"pi_abc"}`,
		key:         deviceKey,
		idempotency: "idem",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	reader := decode(t, recorder)["reader"].(map[string]any)
	assert.Equal(t, "tmr_sim_1", reader["id"])
	assert.Len(t, h.processor.CallsTo("PresentCard"), 1)
	assert.Equal(t, "process-pi-pi_abc", h.processor.CallsTo("ProcessPaymentIntent")[0].Args[2])
}

func TestChargeInProductionWithoutReader(t *testing.T) {
	config := testConfig()
	config.Mode = entities.ProductionMode
	h := newHarness(config)

	recorder := h.do(http.MethodPost, "/api/terminal/charge", requestOptions{
		body:        `{"payment_intent_id":"pi_abc"}`,
		key:         deviceKey,
		idempotency: "idem",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, h.processor.CallCount())
}

func TestGetPaymentIntentReportsEffectiveStatus(t *testing.T) {
	h := newHarness(testConfig())
	h.processor.Intent = &entities.PaymentIntent{
		ID:           "pi_lag",
		Status:       "processing",
		LatestCharge: &entities.Charge{ID: "ch_1", Status: "succeeded"},
	}

	recorder := h.do(http.MethodGet, "/api/payment_intents/pi_lag", requestOptions{key: deviceKey})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, "processing", body["status"])
	assert.Equal(t, "succeeded", body["effective_status"])
	assert.Equal(t, "ch_1", body["latest_charge_id"])
	assert.Equal(t, "pi_lag", h.processor.CallsTo("GetPaymentIntent")[0].Args[0])
}

func TestUnknownRoute(t *testing.T) {
	h := newHarness(testConfig())
	recorder := h.do(http.MethodGet, "/nope", requestOptions{})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "GET /nope does not exist", decode(t, recorder)["error"])
}

func TestPanicBecomesJSONError(t *testing.T) {
	h := newHarness(testConfig())
	h.router.GET("/explode", func(*gin.Context) {
		panic("reader table corrupted")
	})

	recorder := h.do(http.MethodGet, "/explode", requestOptions{})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "Internal server error", decode(t, recorder)["error"])
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
}

func TestProcessorCallOutlivesClientDisconnect(t *testing.T) {
	h := newHarness(testConfig())

	clientCtx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(`{"amount":500,"currency":"usd"}`)).WithContext(clientCtx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", deviceKey)
	req.Header.Set("Idempotency-Key", "idem-disconnect")
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	calls := h.processor.CallsTo("CreatePaymentIntent")
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Ctx)
	assert.Error(t, clientCtx.Err())
	assert.NoError(t, calls[0].Ctx.Err())
}
