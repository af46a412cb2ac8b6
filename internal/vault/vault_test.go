package vault

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	vault "github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	ref, err := ParseRef("vault:secret/badnews/db#password")
	require.NoError(t, err)
	assert.Equal(t, Ref{Mount: "secret", Path: "badnews/db", Key: "password"}, ref)
	assert.Equal(t, "vault:secret/badnews/db#password", ref.String())

	for _, bad := range []string{
		"secret/badnews/db#password",
		"vault:secret/badnews/db",
		"vault:secret/badnews/db#",
		"vault:secret#password",
		"vault:/db#password",
	} {
		_, err := ParseRef(bad)
		assert.Error(t, err, bad)
	}
}

// fakeKV answers KV-v2 reads for secret/badnews/db.
func fakeKV(t *testing.T, hits *atomic.Int32) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/badnews/db" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"data":{"password":"geheim","port":5432},` +
			`"metadata":{"created_time":"2024-01-01T00:00:00Z","deletion_time":"","destroyed":false,"version":1}}}`))
	}))
	t.Cleanup(srv.Close)

	cfg := vault.DefaultConfig()
	cfg.Address = srv.URL
	api, err := vault.NewClient(cfg)
	require.NoError(t, err)
	api.SetToken("test")
	return newClient(api, nil)
}

func TestResolve(t *testing.T) {
	var hits atomic.Int32
	c := fakeKV(t, &hits)
	ctx := context.Background()

	got, err := c.Resolve(ctx, "plain-password")
	require.NoError(t, err)
	assert.Equal(t, "plain-password", got)
	assert.Zero(t, hits.Load())

	got, err = c.Resolve(ctx, "vault:secret/badnews/db#password")
	require.NoError(t, err)
	assert.Equal(t, "geheim", got)

	_, err = c.Resolve(ctx, "vault:secret/badnews/db#missing")
	assert.Error(t, err)

	_, err = c.Resolve(ctx, "vault:secret/badnews/db#port")
	assert.Error(t, err, "non-string values are rejected")
}

func TestGetKV_Caches(t *testing.T) {
	var hits atomic.Int32
	c := fakeKV(t, &hits)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		v, err := c.GetKV(ctx, "secret", "badnews/db", "password", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "geheim", v)
	}
	assert.Equal(t, int32(1), hits.Load())
}
