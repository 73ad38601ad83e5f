package appnexus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"campaign_syncer/internal/domain"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]json.RawMessage
}

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	client  *Client
	logger  *slog.Logger
	handler func(w http.ResponseWriter, r *recordedRequest) bool

	mu       sync.Mutex
	requests []recordedRequest
	logins   int
}

func (s *ClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.requests = nil
	s.logins = 0
	s.handler = nil

	s.server = httptest.NewServer(http.HandlerFunc(s.serve))
	s.client = New(Config{
		BaseURL:        s.server.URL + "/",
		Username:       "api-user",
		Password:       "secret",
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, s.logger)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	if r.URL.Path == "/auth" {
		s.mu.Lock()
		s.logins++
		n := s.logins
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"status": "OK", "token": "token-" + string(rune('0'+n))})
		return
	}

	req := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &req.Body)
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.handler != nil && s.handler(w, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "OK", "id": 42})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"response": body})
}

func (s *ClientTestSuite) TestAddAdvertiser_LogsInAndReturnsID() {
	id, err := s.client.AddAdvertiser(context.Background(), &domain.AdvertiserData{Name: "Acme"})

	s.NoError(err)
	s.Equal(int64(42), id)
	s.Equal(1, s.logins)
	s.Require().Len(s.requests, 1)
	s.Equal(http.MethodPost, s.requests[0].Method)
	s.Equal("/advertiser", s.requests[0].Path)
	s.Equal("token-1", s.requests[0].Auth)
	s.Contains(s.requests[0].Body, "advertiser")
}

func (s *ClientTestSuite) TestSessionIsReused() {
	_, err := s.client.AddDomainList(context.Background(), &domain.DomainList{Name: "a"})
	s.NoError(err)
	err = s.client.UpdateDomainList(context.Background(), 7, &domain.DomainList{Name: "a"})
	s.NoError(err)

	s.Equal(1, s.logins)
	s.Require().Len(s.requests, 2)
	s.Equal("id=7", s.requests[1].Query)
}

func (s *ClientTestSuite) TestUpdateProfile_SendsIDs() {
	err := s.client.UpdateProfile(context.Background(), 11, 99, &domain.Profile{Trust: "appnexus"})

	s.NoError(err)
	s.Require().Len(s.requests, 1)
	s.Equal(http.MethodPut, s.requests[0].Method)
	s.Equal("/profile", s.requests[0].Path)
	s.Equal("advertiser_id=99&id=11", s.requests[0].Query)
	s.Contains(s.requests[0].Body, "profile")
}

func (s *ClientTestSuite) TestSetLineItemState_SendsOnlyState() {
	err := s.client.SetLineItemState(context.Background(), 5, 99, domain.CampaignStatusInactive)

	s.NoError(err)
	s.Require().Len(s.requests, 1)
	s.JSONEq(`{"state":"inactive"}`, string(s.requests[0].Body["line-item"]))
}

func (s *ClientTestSuite) TestDeleteAdvertiser_SendsNoBody() {
	err := s.client.DeleteAdvertiser(context.Background(), 3)

	s.NoError(err)
	s.Require().Len(s.requests, 1)
	s.Equal(http.MethodDelete, s.requests[0].Method)
	s.Nil(s.requests[0].Body)
}

func (s *ClientTestSuite) TestExpiredSession_ReauthenticatesOnce() {
	s.handler = func(w http.ResponseWriter, r *recordedRequest) bool {
		if r.Auth == "token-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error_id": "NOAUTH", "error": "Authentication failed - not logged in"})
			return true
		}
		return false
	}

	id, err := s.client.AddCampaign(context.Background(), 99, &domain.RemoteCampaign{Name: "c"})

	s.NoError(err)
	s.Equal(int64(42), id)
	s.Equal(2, s.logins)
	s.Require().Len(s.requests, 2)
	s.Equal("token-2", s.requests[1].Auth)
}

func (s *ClientTestSuite) TestUpdate_RetriesServerErrors() {
	calls := 0
	s.handler = func(w http.ResponseWriter, r *recordedRequest) bool {
		calls++
		if calls < 3 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error_id": "SYSTEM", "error": "busy"})
			return true
		}
		return false
	}

	err := s.client.UpdateLineItem(context.Background(), 5, 99, &domain.LineItem{Name: "li"})

	s.NoError(err)
	s.Equal(3, calls)
}

func (s *ClientTestSuite) TestCreate_IsNotRetried() {
	s.handler = func(w http.ResponseWriter, r *recordedRequest) bool {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error_id": "SYSTEM", "error": "boom"})
		return true
	}

	_, err := s.client.AddLineItem(context.Background(), 99, &domain.LineItem{Name: "li"})

	s.Error(err)
	s.Len(s.requests, 1)
}

func (s *ClientTestSuite) TestClientError_IsNotRetriedAndDecoded() {
	s.handler = func(w http.ResponseWriter, r *recordedRequest) bool {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":            "error",
			"error_id":          "SYNTAX",
			"error":             "Invalid field",
			"error_description": "country_targets must be an array",
		})
		return true
	}

	err := s.client.UpdateCampaign(context.Background(), 1, 2, &domain.RemoteCampaign{})

	var apiErr *Error
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("SYNTAX", apiErr.ID)
	s.Equal(http.StatusBadRequest, apiErr.StatusCode)
	s.Equal("Invalid field: country_targets must be an array", DecodeMessage(err))
	s.Len(s.requests, 1)
}

func (s *ClientTestSuite) TestErrorStatusInOKResponse() {
	s.handler = func(w http.ResponseWriter, r *recordedRequest) bool {
		writeJSON(w, http.StatusOK, map[string]any{"status": "error", "error": "advertiser not found"})
		return true
	}

	err := s.client.UpdateAdvertiser(context.Background(), 1, &domain.AdvertiserData{})

	s.Error(err)
	s.Equal("advertiser not found", DecodeMessage(err))
}

func (s *ClientTestSuite) TestCancelledContext() {
	s.handler = func(w http.ResponseWriter, r *recordedRequest) bool {
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": "bad gateway"})
		return true
	}
	s.client.initialBackoff = time.Second
	s.client.maxBackoff = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.client.UpdateProfile(ctx, 1, 2, &domain.Profile{})

	s.ErrorIs(err, context.DeadlineExceeded)
}

func TestDecodeMessage(t *testing.T) {
	assert.Equal(t, "", DecodeMessage(nil))
	assert.Equal(t, "plain failure", DecodeMessage(errors.New("plain failure")))
	assert.Equal(t, "Not Found", DecodeMessage(&Error{StatusCode: http.StatusNotFound}))
	assert.Equal(t, "same", DecodeMessage(&Error{Message: "same", Description: "same"}))
	assert.Equal(t, "only description", DecodeMessage(&Error{Description: "only description"}))
	assert.Equal(t, "wrapped", DecodeMessage(fmt.Errorf("update profile: %w", &Error{Message: "wrapped"})))
}

func TestCalculateBackoff(t *testing.T) {
	c := &Client{initialBackoff: time.Second, maxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, c.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, c.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, c.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, c.calculateBackoff(4))
}
