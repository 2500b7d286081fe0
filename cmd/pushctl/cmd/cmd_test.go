package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseDue(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantReleased int
		wantErr      string
	}{
		{name: "released", status: http.StatusOK, body: `{"success":true,"released":3}`, wantReleased: 3},
		{name: "rejected", status: http.StatusBadRequest, body: `{"success":false,"error":"Invalid fields: limit"}`, wantErr: "Invalid fields: limit"},
		{name: "not json", status: http.StatusBadGateway, body: `<html>`, wantErr: "unexpected response (status 502)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, releasePath, r.URL.Path)

				var payload map[string]int
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, 5, payload["limit"])

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			released, err := releaseDue(context.Background(), server.Client(), server.URL+"/", 5)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantReleased, released)
		})
	}
}

func TestVapidGenerate(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"vapid", "generate"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "PUSH_VAPID_PUBLICKEY="))
	assert.True(t, strings.HasPrefix(lines[1], "PUSH_VAPID_PRIVATEKEY="))
	assert.Greater(t, len(strings.TrimPrefix(lines[0], "PUSH_VAPID_PUBLICKEY=")), 80)
}

func TestQRCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "store.png")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"qr", "store-42", "-o", output, "--base-url", "https://shop.example/subscribe"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	png, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
	assert.Contains(t, out.String(), "https://shop.example/subscribe?store_id=store-42")
	assert.Contains(t, out.String(), "SHA-256:")
}
