package mcpserver

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	blocked := []string{"127.0.0.1", "10.0.0.1", "192.168.1.1", "172.16.0.1", "169.254.1.1", "0.0.0.0", "::1"}
	for _, s := range blocked {
		ip := net.ParseIP(s)
		require.NotNil(t, ip, s)
		assert.True(t, isBlockedIP(ip), s)
	}

	allowed := []string{"8.8.8.8", "1.1.1.1", "2606:4700:4700::1111"}
	for _, s := range allowed {
		ip := net.ParseIP(s)
		require.NotNil(t, ip, s)
		assert.False(t, isBlockedIP(ip), s)
	}
}

func TestScreenHost(t *testing.T) {
	_, err := screenHost(context.Background(), "127.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")

	ips, err := screenHost(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	require.Len(t, ips, 1)
	assert.Equal(t, "8.8.8.8", ips[0].IP.String())
}

func TestNewSafeHTTPClientBlocksLoopback(t *testing.T) {
	client := newSafeHTTPClient()
	_, err := client.Get("http://127.0.0.1:9/doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")
}
