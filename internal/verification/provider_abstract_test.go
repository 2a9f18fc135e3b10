package verification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbstractProviderVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key123", r.URL.Query().Get("api_key"))
		assert.Equal(t, "jane@corp.com", r.URL.Query().Get("email"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"email": "jane@corp.com",
			"deliverability": "DELIVERABLE",
			"quality_score": "0.95",
			"is_valid_format": {"value": true, "text": "TRUE"},
			"is_mx_found": {"value": true, "text": "TRUE"},
			"is_smtp_valid": {"value": true, "text": "TRUE"}
		}`))
	}))
	defer srv.Close()

	p := NewAbstractProvider("key123", srv.URL)
	v, err := p.Verify(context.Background(), "jane@corp.com")
	require.NoError(t, err)
	assert.True(t, v.FormatValid)
	require.NotNil(t, v.MXFound)
	assert.True(t, *v.MXFound)
	require.NotNil(t, v.SMTPValid)
	assert.True(t, *v.SMTPValid)
	assert.Equal(t, Deliverable, v.Deliverability)
	require.NotNil(t, v.Confidence)
	assert.Equal(t, 95, *v.Confidence)
}

func TestAbstractProviderUndeliverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"deliverability": "UNDELIVERABLE",
			"quality_score": "0.10",
			"is_valid_format": {"value": true},
			"is_mx_found": {"value": false},
			"is_smtp_valid": {"value": false}
		}`))
	}))
	defer srv.Close()

	p := NewAbstractProvider("key123", srv.URL)
	v, err := p.Verify(context.Background(), "nobody@gone.example")
	require.NoError(t, err)
	assert.Equal(t, Undeliverable, v.Deliverability)
	require.NotNil(t, v.MXFound)
	assert.False(t, *v.MXFound)
	require.NotNil(t, v.Confidence)
	assert.Equal(t, 10, *v.Confidence)
}

func TestAbstractProviderTriStateOmitted(t *testing.T) {
	// Fields the API omits stay unknown rather than defaulting to false.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"deliverability": "RISKY"}`))
	}))
	defer srv.Close()

	p := NewAbstractProvider("key123", srv.URL)
	v, err := p.Verify(context.Background(), "jane@corp.com")
	require.NoError(t, err)
	assert.True(t, v.FormatValid)
	assert.Nil(t, v.MXFound)
	assert.Nil(t, v.SMTPValid)
	assert.Nil(t, v.Confidence)
	assert.Equal(t, Unknown, v.Deliverability)
}

func TestAbstractProviderNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewAbstractProvider("key123", srv.URL)
	_, err := p.Verify(context.Background(), "jane@corp.com")
	assert.Error(t, err)
}

func TestAbstractProviderRequiresKey(t *testing.T) {
	p := NewAbstractProvider("", "https://example.com")
	_, err := p.Verify(context.Background(), "jane@corp.com")
	assert.Error(t, err)
}
