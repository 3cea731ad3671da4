package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/usecases/encodemessage"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/rest"
	"github.com/sergeii/enigma/internal/rest/api"
	"github.com/sergeii/enigma/internal/validation"
)

func makeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validate, err := validation.New()
	require.NoError(t, err)
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	uc := encodemessage.New(validate, clock, metrics.New(), &logger)
	return rest.NewRouter(api.New(uc, clock, &logger), &logger, clock)
}

func doEncode(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/encode", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Encode_OK(t *testing.T) {
	router := makeRouter(t)

	rec := doEncode(t, router, `{"message": "HELLO"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp struct {
		Ciphertext string `json:"ciphertext"`
		Letters    int    `json:"letters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VNACA", resp.Ciphertext)
	assert.Equal(t, 5, resp.Letters)
}

func TestAPI_Encode_ExplicitSettings(t *testing.T) {
	router := makeRouter(t)

	rec := doEncode(t, router, `{
		"message": "HELLOWORLD",
		"rotors": [0, 1, 2],
		"positions": [0, 0, 0],
		"rings": [0, 0, 0],
		"plugboard": ["QW", "ER"]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Ciphertext string `json:"ciphertext"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VDACACJJEA", resp.Ciphertext)
}

func TestAPI_Encode_RoundTrip(t *testing.T) {
	router := makeRouter(t)

	rec := doEncode(t, router, `{"message": "VDACACJJEA", "plugboard": ["QW", "ER"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Ciphertext string `json:"ciphertext"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "HELLOWORLD", resp.Ciphertext)
}

func TestAPI_Encode_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty payload", `{}`},
		{"message missing", `{"plugboard": ["AB"]}`},
		{"malformed json", `{"message": `},
		{"rotors not a list", `{"message": "HELLO", "rotors": "012"}`},
		{"rotor out of range", `{"message": "HELLO", "rotors": [0, 1, 7]}`},
		{"position out of range", `{"message": "HELLO", "positions": [0, 0, 26]}`},
		{"ring out of range", `{"message": "HELLO", "rings": [-1, 0, 0]}`},
		{"malformed plugboard pair", `{"message": "HELLO", "plugboard": ["ABC"]}`},
		{"plugboard letter reused", `{"message": "HELLO", "plugboard": ["AB", "AC"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := makeRouter(t)
			rec := doEncode(t, router, tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
