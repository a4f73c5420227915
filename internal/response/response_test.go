package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/t", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"value": 42})
	})
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error != nil {
		t.Errorf("unexpected error body: %+v", body.Error)
	}
	if body.Metadata.RequestID == "" || body.Metadata.Timestamp == "" {
		t.Errorf("metadata incomplete: %+v", body.Metadata)
	}
	if w.Header().Get("X-Request-ID") != body.Metadata.RequestID {
		t.Error("header and metadata request IDs differ")
	}
}

func TestFailEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/t", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, ErrNotFound)
	})
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error == nil || body.Error.Code != ErrNotFound {
		t.Fatalf("error body = %+v", body.Error)
	}
	if body.Error.Message == "" {
		t.Error("error message missing")
	}
	// No middleware applied; envelope still carries a fallback request ID.
	if body.Metadata.RequestID == "" {
		t.Error("fallback request ID missing")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/t", func(c *gin.Context) {
		Success(c, http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	r.ServeHTTP(w, req)

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Metadata.RequestID != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied-id", body.Metadata.RequestID)
	}
}
