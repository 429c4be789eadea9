package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/lexicon"
)

func TestMetrics_ObserveParse(t *testing.T) {
	// --- Arrange ---
	m := New()
	text, err := annotate.Parse("konsep #a #b {lang.en:x} {lang.en:y} {meta.gol:NAMA}")
	require.NoError(t, err)
	_, malformed := annotate.Parse("satu # dua")
	require.Error(t, malformed)

	// --- Act ---
	start := time.Now()
	m.ObserveParse(start, text, nil)
	m.ObserveParse(start, nil, malformed)
	m.ObserveParse(start, nil, errors.New("boom"))

	// --- Assert ---
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParsesTotal.WithLabelValues(OutcomeOK, "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParsesTotal.WithLabelValues(OutcomeMalformed, string(annotate.KindAmbiguousContent))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParsesTotal.WithLabelValues(OutcomeError, "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokensTotal.WithLabelValues(string(annotate.CategoryContent))))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TokensTotal.WithLabelValues(string(annotate.CategoryTag))))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TokensTotal.WithLabelValues(string(annotate.CategoryField))))
}

func TestMetrics_ObserveDraft(t *testing.T) {
	m := New()
	_, malformed := annotate.Parse("satu # dua")
	invalid := errors.Mark(errors.New("no word class"), lexicon.ErrInvalidDraft)

	m.ObserveDraft(nil)
	m.ObserveDraft(malformed)
	m.ObserveDraft(invalid)
	m.ObserveDraft(errors.New("boom"))

	for _, outcome := range []string{OutcomeOK, OutcomeMalformed, OutcomeInvalid, OutcomeError} {
		assert.Equal(t, 1.0, testutil.ToFloat64(m.DraftsTotal.WithLabelValues(outcome)), outcome)
	}
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveParse(time.Now(), nil, nil)
		m.ObserveDraft(nil)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveDraft(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `samudra_lexicon_drafts_total{outcome="ok"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
