//go:generate mockgen -destination=mocks/client.go -package=mocks . Client

package api

import "context"

// Client defines the operations the catalog loader and pre-flash verifier
// need from the remote firmware service.
type Client interface {
	// Projects fetches the project list. Malformed rows are logged and
	// skipped; the call fails only when the request itself fails.
	Projects(ctx context.Context) ([]ProjectRow, error)

	// Families fetches the device family list.
	Families(ctx context.Context) ([]FamilyRow, error)

	// Firmware fetches the firmware list.
	Firmware(ctx context.Context) ([]FirmwareRow, error)

	// FlashVerify asks the service to re-confirm a firmware checksum
	// immediately before flashing.
	FlashVerify(ctx context.Context, req FlashVerifyRequest) (*FlashVerifyResponse, error)
}
