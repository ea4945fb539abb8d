package rest

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_Get(t *testing.T) {
	req, err := NewRequest(context.Background(), http.MethodGet, "http://myserver/arcgis/admin/services?detail=true",
		map[string]string{"f": "json", "token": "abc"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	q := req.URL.Query()
	assert.Equal(t, "json", q.Get("f"))
	assert.Equal(t, "abc", q.Get("token"))
	assert.Equal(t, "true", q.Get("detail"))
	assert.Nil(t, req.Body)
}

func TestNewRequest_Post(t *testing.T) {
	req, err := NewRequest(context.Background(), http.MethodPost, "http://myserver/arcgis/admin/services/a.MapServer/delete",
		map[string]string{"f": "json", "token": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "f=json&token=abc", string(body))
	assert.Empty(t, req.URL.RawQuery)
}

func TestNewRequest_Errors(t *testing.T) {
	_, err := NewRequest(context.Background(), http.MethodDelete, "http://myserver", nil)
	assert.ErrorContains(t, err, "unsupported method")

	_, err = NewRequest(context.Background(), http.MethodGet, "http://[::1", nil)
	assert.ErrorContains(t, err, "invalid URL")
}

func TestNewHTTPClient(t *testing.T) {
	insecure := NewHTTPClient(false, 0)
	transport := insecure.Transport.(*http.Transport)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)

	secure := NewHTTPClient(true, 0)
	assert.False(t, secure.Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify)
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "http://h/a?f=json&token=REDACTED", RedactURL("http://h/a?f=json&token=abc"))
	assert.Equal(t, "http://h/a?f=json", RedactURL("http://h/a?f=json"))
}
