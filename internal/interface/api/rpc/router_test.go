package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docchat-api/internal/domain/identity"
	identitySvc "docchat-api/internal/infrastructure/identity"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T, register func(rt *Router)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	rt := NewRouter(r, zap.NewNop(), identitySvc.New(testSecret))
	register(rt)

	return r
}

func doRPC(t *testing.T, r *gin.Engine, procedure string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, "/api/v1/rpc/"+procedure, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func signToken(t *testing.T, secret, sub, email string, exp time.Duration) string {
	t.Helper()

	claims := struct {
		Email string `json:"email"`
		jwtv5.RegisteredClaims
	}{
		Email: email,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authHeader(t *testing.T, sub, email string) map[string]string {
	t.Helper()
	return map[string]string{
		"Authorization": "Bearer " + signToken(t, testSecret, sub, email, time.Hour),
	}
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestRouter_Dispatch(t *testing.T) {
	echo := Procedure{
		Name:         "echo",
		AuthRequired: true,
		Decode: func(raw []byte) (any, error) {
			var in struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, errors.New("invalid request body")
			}
			if in.Text == "" {
				return nil, errors.New("text is required")
			}
			return in.Text, nil
		},
		Handle: func(ctx context.Context, caller *identity.Identity, input any) (any, error) {
			return gin.H{"caller": caller.ID, "text": input.(string)}, nil
		},
	}

	tests := []struct {
		name       string
		procedure  string
		body       any
		headers    map[string]string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "404 unknown procedure",
			procedure:  "noSuchThing",
			body:       gin.H{"text": "hi"},
			headers:    authHeader(t, "user-1", "a@b.c"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "400 invalid input before auth",
			procedure:  "echo",
			body:       gin.H{"text": ""},
			headers:    nil, // no token: validation still runs first
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "401 missing token",
			procedure:  "echo",
			body:       gin.H{"text": "hi"},
			headers:    nil,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:      "401 token signed with other secret",
			procedure: "echo",
			body:      gin.H{"text": "hi"},
			headers: map[string]string{
				"Authorization": "Bearer " + signToken(t, "other-secret", "user-1", "a@b.c", time.Hour),
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:      "401 expired token",
			procedure: "echo",
			body:      gin.H{"text": "hi"},
			headers: map[string]string{
				"Authorization": "Bearer " + signToken(t, testSecret, "user-1", "a@b.c", -time.Hour),
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "200 success",
			procedure:  "echo",
			body:       gin.H{"text": "hi"},
			headers:    authHeader(t, "user-1", "a@b.c"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, func(rt *Router) { rt.Register(echo) })
			rr := doRPC(t, r, tt.procedure, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errCode(t, rr))
			}
		})
	}
}

func TestRouter_Dispatch_HandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		handleErr  error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "typed error passes through",
			handleErr:  NotFound("file not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "file not found",
		},
		{
			name:       "unclassified error stays generic",
			handleErr:  errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := Procedure{
				Name:         "failing",
				AuthRequired: true,
				Handle: func(ctx context.Context, caller *identity.Identity, input any) (any, error) {
					return nil, tt.handleErr
				},
			}
			r := setupRouter(t, func(rt *Router) { rt.Register(p) })
			rr := doRPC(t, r, "failing", nil, authHeader(t, "user-1", "a@b.c"))
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, errCode(t, rr))

			var resp struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestRouter_ResolvesCaller(t *testing.T) {
	var gotCaller *identity.Identity
	p := Procedure{
		Name: "whoami",
		Handle: func(ctx context.Context, caller *identity.Identity, input any) (any, error) {
			gotCaller = caller
			return gin.H{}, nil
		},
	}
	r := setupRouter(t, func(rt *Router) { rt.Register(p) })

	// public procedure without a token: handler still runs, caller is nil
	rr := doRPC(t, r, "whoami", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotCaller.IsZero())

	rr = doRPC(t, r, "whoami", nil, authHeader(t, "user-42", "u42@example.com"))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotCaller)
	assert.Equal(t, "user-42", gotCaller.ID)
	assert.Equal(t, "u42@example.com", gotCaller.Email)
}
