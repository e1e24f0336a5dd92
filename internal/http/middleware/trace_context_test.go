package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func traceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"trace_id":   c.GetString(ctxKeyTraceID),
			"request_id": c.GetString(ctxKeyRequestID),
		})
	})
	return r
}

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	traceRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := w.Header().Get(headerTraceID)
	reqID := w.Header().Get(headerRequestID)
	if traceID == "" || reqID == "" {
		t.Fatalf("ids should always be set, got trace=%q request=%q", traceID, reqID)
	}
	if _, err := uuid.Parse(reqID); err != nil {
		t.Fatalf("generated request id is not a uuid: %q", reqID)
	}
}

func TestAttachTraceContextHonorsIncomingIDs(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerTraceID, "incoming-trace")
	req.Header.Set(headerRequestID, "incoming-request")

	w := httptest.NewRecorder()
	traceRouter().ServeHTTP(w, req)

	if got := w.Header().Get(headerTraceID); got != "incoming-trace" {
		t.Fatalf("incoming trace id not honored: %q", got)
	}
	if got := w.Header().Get(headerRequestID); got != "incoming-request" {
		t.Fatalf("incoming request id not honored: %q", got)
	}
}
