package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(remoteAddr string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestRemoteAddrExtractor_IgnoresHeaders(t *testing.T) {
	req := request("203.0.113.9:4444", map[string]string{
		"X-Forwarded-For": "10.0.0.1",
		"X-Real-IP":       "10.0.0.2",
	})

	ip, err := RemoteAddrExtractor{}.ExtractIP(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.9", ip)
}

func TestRemoteAddrExtractor_Formats(t *testing.T) {
	tests := []struct {
		addr    string
		want    string
		wantErr bool
	}{
		{addr: "192.168.1.1:54321", want: "192.168.1.1"},
		{addr: "[2001:db8::1]:8080", want: "2001:db8::1"},
		{addr: "127.0.0.1", want: "127.0.0.1"},
		{addr: "not-an-address", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			ip, err := RemoteAddrExtractor{}.ExtractIP(request(tt.addr, nil))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ip)
		})
	}
}

func TestTrustedProxyExtractor(t *testing.T) {
	cfg := TrustedProxyConfig{
		Enabled:      true,
		AllowedCIDRs: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")},
	}
	e := NewTrustedProxyExtractor(cfg)

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{name: "trusted proxy forwards client", remoteAddr: "10.1.2.3:80", headers: map[string]string{"X-Forwarded-For": "198.51.100.7, 10.1.2.3"}, want: "198.51.100.7"},
		{name: "trusted proxy real ip", remoteAddr: "10.1.2.3:80", headers: map[string]string{"X-Real-IP": "198.51.100.8"}, want: "198.51.100.8"},
		{name: "trusted proxy without headers", remoteAddr: "10.1.2.3:80", want: "10.1.2.3"},
		{name: "trusted proxy garbage header", remoteAddr: "10.1.2.3:80", headers: map[string]string{"X-Forwarded-For": "nope"}, want: "10.1.2.3"},
		{name: "untrusted peer spoofing", remoteAddr: "203.0.113.9:4444", headers: map[string]string{"X-Forwarded-For": "10.0.0.5"}, want: "203.0.113.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, err := e.ExtractIP(request(tt.remoteAddr, tt.headers))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ip)
		})
	}
}

func TestNewIPExtractor_DefaultsToRemoteAddr(t *testing.T) {
	assert.IsType(t, RemoteAddrExtractor{}, NewIPExtractor(TrustedProxyConfig{}))
	assert.IsType(t, &TrustedProxyExtractor{}, NewIPExtractor(TrustedProxyConfig{Enabled: true}))
}

func TestLoadTrustedProxyConfig(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "")
		cfg, err := LoadTrustedProxyConfig()
		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
	})

	t.Run("ips and cidrs", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("TRUSTED_PROXIES", "192.168.1.1, 172.16.0.0/12, 2001:db8::/32")
		cfg, err := LoadTrustedProxyConfig()
		require.NoError(t, err)
		require.Len(t, cfg.AllowedCIDRs, 3)
		assert.Equal(t, 32, cfg.AllowedCIDRs[0].Bits())
		assert.True(t, cfg.IsTrusted("172.20.0.1:1234"))
		assert.False(t, cfg.IsTrusted("8.8.8.8:53"))
	})

	t.Run("enabled without proxies", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("TRUSTED_PROXIES", "")
		_, err := LoadTrustedProxyConfig()
		assert.Error(t, err)
	})

	t.Run("invalid entry", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, proxy.local")
		_, err := LoadTrustedProxyConfig()
		assert.Error(t, err)
	})
}
