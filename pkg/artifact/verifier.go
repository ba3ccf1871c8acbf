package artifact

import (
	"context"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/api"
	"github.com/webfraggle/mbdflasher/pkg/catalog"
	"github.com/webfraggle/mbdflasher/pkg/checksum"
	"github.com/webfraggle/mbdflasher/pkg/errors"
)

// RemoteVerifier re-confirms a cached checksum against the remote service
// immediately before flashing, guarding against a locally cached checksum
// silently diverging from the authoritative source between catalog load and
// flash time.
type RemoteVerifier struct {
	client         api.Client
	flasher        string
	flasherVersion string
}

// NewRemoteVerifier creates a verifier that identifies itself to the
// service as flasher/flasherVersion.
func NewRemoteVerifier(client api.Client, flasher, flasherVersion string) *RemoteVerifier {
	return &RemoteVerifier{client: client, flasher: flasher, flasherVersion: flasherVersion}
}

// VerifyBeforeFlash returns nil only when the service reports success and
// the returned reference checksum equals the locally cached checksum for
// the firmware. Any network failure, malformed response or mismatch yields
// an error and flashing must not proceed.
func (v *RemoteVerifier) VerifyBeforeFlash(ctx context.Context, fw *catalog.Firmware) error {
	resp, err := v.client.FlashVerify(ctx, api.FlashVerifyRequest{
		FirmwareID:     fw.ID,
		Flasher:        v.flasher,
		FlasherVersion: v.flasherVersion,
	})
	if err != nil {
		return errors.Wrap(err, "flash verify request")
	}
	if resp.Status != api.StatusSuccess {
		return errors.Wrapf(errors.ErrVerifyRejected, "service status %q", resp.Status)
	}
	if checksum.Normalize(resp.Message) != checksum.Normalize(fw.Checksum) {
		return errors.Wrap(errors.ErrVerifyRejected, "cached checksum diverged from service")
	}

	logger.Debug("Pre-flash verification passed", logger.Fields{"firmware_id": fw.ID})
	return nil
}
