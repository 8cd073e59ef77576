package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Push(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New()
	m.Submissions.WithLabelValues(EntityEvent, OutcomeAccepted).Add(3)

	require.NoError(t, m.Push(context.Background(), srv.URL, "techscene_importer"))
	assert.Equal(t, http.MethodPut, gotMethod, "push replaces the job's group")
	assert.Equal(t, "/metrics/job/techscene_importer", gotPath)
	assert.True(t, strings.Contains(gotBody, "techscene_submissions_total"), "domain counters are pushed")
}

func TestMetrics_PushGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New().Push(context.Background(), srv.URL, "techscene_importer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), srv.URL)
}
