package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPClient(server.URL, time.Second, "test-agent/1.0"), server
}

func TestProjects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/project_list/all/", r.URL.Path)
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "name": "ProjectA", "weight": 10, "show_in_standalone_flasher": true},
			{"id": 2, "name": "ProjectB", "weight": 20},
		})
	})

	rows, err := client.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, "ProjectA", rows[0].Name)
	assert.True(t, rows[0].ShowInStandalone)
	assert.Equal(t, "ProjectB", rows[1].Name)
}

func TestProjectsSkipsMalformedRow(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// Second row has a non-numeric id and must be skipped, not fatal.
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Good"}, {"id": "broken", "name": "Bad"}]`))
	})

	rows, err := client.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Good", rows[0].Name)
}

func TestFamilies(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/firmware_family_list/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id": 10, "name": "ESP32", "flash_method": "esptool",
				"detection_family": "ESP32", "use_1200_bps_touch": false,
				"download_url_bootloader": "https://example.com/bootloader.bin",
				"checksum_bootloader":     "abc123",
			},
		})
	})

	rows, err := client.Families(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "esptool", rows[0].FlashMethod)
	assert.Equal(t, "https://example.com/bootloader.bin", rows[0].DownloadURLBootloader)
}

func TestFirmware(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/firmware_list/all/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id": 100, "name": "FW1", "version": "1.0", "family_id": 10,
				"project_id": 1, "download_url": "https://example.com/firmware.bin",
				"checksum": "deadbeef", "spiffs_address": "0x291000",
			},
		})
	})

	rows, err := client.Firmware(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].ID)
	assert.Equal(t, 10, rows[0].FamilyID)
	assert.Equal(t, "0x291000", rows[0].SpiffsAddress)
}

func TestGetListErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "non-JSON body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>not json</html>"))
			},
		},
		{
			name: "JSON object instead of array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"detail": "not a list"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)
			_, err := client.Projects(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFlashVerify(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/flash_verify/", r.URL.Path)

		var req FlashVerifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 100, req.FirmwareID)
		assert.Equal(t, "mbdflasher", req.Flasher)

		_ = json.NewEncoder(w).Encode(FlashVerifyResponse{Status: "success", Message: "deadbeef"})
	})

	resp, err := client.FlashVerify(context.Background(), FlashVerifyRequest{
		FirmwareID:     100,
		Flasher:        "mbdflasher",
		FlasherVersion: "1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "deadbeef", resp.Message)
}

func TestFlashVerifyServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FlashVerify(context.Background(), FlashVerifyRequest{FirmwareID: 1})
	assert.Error(t, err)
}
