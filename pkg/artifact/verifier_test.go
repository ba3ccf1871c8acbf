package artifact

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/webfraggle/mbdflasher/pkg/api"
	"github.com/webfraggle/mbdflasher/pkg/api/mocks"
	"github.com/webfraggle/mbdflasher/pkg/catalog"
	"github.com/webfraggle/mbdflasher/pkg/errors"
)

func TestVerifyBeforeFlash(t *testing.T) {
	fw := &catalog.Firmware{ID: 100, Checksum: "DEADBEEF"}

	tests := []struct {
		name      string
		response  *api.FlashVerifyResponse
		err       error
		expectErr error
	}{
		{
			name:     "success with matching checksum",
			response: &api.FlashVerifyResponse{Status: "success", Message: "deadbeef"},
		},
		{
			name:      "non-success status even with message present",
			response:  &api.FlashVerifyResponse{Status: "error", Message: "deadbeef"},
			expectErr: errors.ErrVerifyRejected,
		},
		{
			name:      "checksum mismatch",
			response:  &api.FlashVerifyResponse{Status: "success", Message: "0123456789abcdef"},
			expectErr: errors.ErrVerifyRejected,
		},
		{
			name: "network failure",
			err:  fmt.Errorf("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			client.EXPECT().
				FlashVerify(gomock.Any(), api.FlashVerifyRequest{
					FirmwareID:     100,
					Flasher:        "mbdflasher",
					FlasherVersion: "1.0",
				}).
				Return(tt.response, tt.err)

			v := NewRemoteVerifier(client, "mbdflasher", "1.0")
			err := v.VerifyBeforeFlash(context.Background(), fw)

			if tt.err == nil && tt.expectErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			}
		})
	}
}
