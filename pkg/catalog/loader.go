package catalog

import (
	"context"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/api"
	"github.com/webfraggle/mbdflasher/pkg/errors"
)

// Options control one catalog load cycle.
type Options struct {
	// EsptoolOnly excludes device families whose flash method is not
	// DefaultFlashMethod, together with their firmware.
	EsptoolOnly bool

	// WarnOnOrphanRows promotes the log level for firmware rows that
	// reference a family id absent from the loaded family set. By default
	// such rows are dropped silently at debug level.
	WarnOnOrphanRows bool
}

// Loader builds a catalog from the remote service. The three list endpoints
// must be loaded in a fixed sequence because firmware rows cross-reference
// family and project ids from the earlier stages.
type Loader struct {
	client api.Client
}

// NewLoader creates a loader using the given service client.
func NewLoader(client api.Client) *Loader {
	return &Loader{client: client}
}

// Load runs the full cycle: projects, families, firmware, cleanse. It
// returns a fresh catalog on success. Any stage failure aborts the cycle;
// no partial catalog is ever returned.
func (l *Loader) Load(ctx context.Context, opts Options) (*Catalog, error) {
	cat := New()

	if err := l.loadProjects(ctx, cat); err != nil {
		return nil, errors.Wrap(err, "loading projects")
	}
	if err := l.loadFamilies(ctx, cat, opts.EsptoolOnly); err != nil {
		return nil, errors.Wrap(err, "loading device families")
	}
	if err := l.loadFirmware(ctx, cat, opts.WarnOnOrphanRows); err != nil {
		return nil, errors.Wrap(err, "loading firmware")
	}
	cat.cleanse()

	logger.Debug("Catalog loaded", logger.Fields{
		"projects": len(cat.Projects),
		"families": len(cat.Families),
	})
	return cat, nil
}

func (l *Loader) loadProjects(ctx context.Context, cat *Catalog) error {
	rows, err := l.client.Projects(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.Wrap(errors.ErrEmptyResponse, "project list")
	}

	for _, row := range rows {
		cat.addProject(&Project{
			ID:               row.ID,
			Name:             row.Name,
			Weight:           row.Weight,
			Description:      row.Description,
			SupportURL:       row.SupportURL,
			ProjectURL:       row.ProjectURL,
			DocumentationURL: row.DocumentationURL,
			ShowInStandalone: row.ShowInStandalone,
			Families:         make(map[int]*DeviceFamily),
		})
	}
	return nil
}

func (l *Loader) loadFamilies(ctx context.Context, cat *Catalog, esptoolOnly bool) error {
	rows, err := l.client.Families(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.Wrap(errors.ErrEmptyResponse, "family list")
	}

	for _, row := range rows {
		if esptoolOnly && row.FlashMethod != DefaultFlashMethod {
			logger.Debug("Skipping non-esptool family", logger.Fields{
				"family": row.Name, "flash_method": row.FlashMethod,
			})
			continue
		}

		family := &DeviceFamily{
			ID:                 row.ID,
			Name:               row.Name,
			FlashMethod:        row.FlashMethod,
			DetectionFamily:    row.DetectionFamily,
			Use1200BpsTouch:    row.Use1200BpsTouch,
			BootloaderURL:      row.DownloadURLBootloader,
			OtadataURL:         row.DownloadURLOtadata,
			OtadataAddress:     row.OtadataAddress,
			BootloaderChecksum: row.ChecksumBootloader,
			OtadataChecksum:    row.ChecksumOtadata,
		}

		cat.Families[family.ID] = family
		cat.validFamilyIDs[family.ID] = struct{}{}

		// Each project receives its own copy so firmware appended to one
		// project's sequence never shows up in another's.
		for _, pid := range cat.projectOrder {
			cat.Projects[pid].addFamily(family.Clone())
		}
	}
	return nil
}

func (l *Loader) loadFirmware(ctx context.Context, cat *Catalog, warnOnOrphans bool) error {
	rows, err := l.client.Firmware(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.Wrap(errors.ErrEmptyResponse, "firmware list")
	}

	for _, row := range rows {
		if _, ok := cat.validFamilyIDs[row.FamilyID]; !ok {
			// The family was excluded in the previous stage, e.g. a
			// non-esptool family under the desktop filter.
			fields := logger.Fields{"firmware": row.Name, "family_id": row.FamilyID}
			if warnOnOrphans {
				logger.Warn("Dropping firmware row with unknown family id", fields)
			} else {
				logger.Debug("Dropping firmware row with unknown family id", fields)
			}
			continue
		}

		family := cat.Families[row.FamilyID]
		fw := &Firmware{
			ID:                     row.ID,
			Name:                   row.Name,
			Version:                row.Version,
			Variant:                row.Variant,
			FamilyID:               row.FamilyID,
			Family:                 family,
			ProjectID:              row.ProjectID,
			IsFermentrackSupported: row.IsFermentrackSupported,
			InError:                row.InError,
			Description:            row.Description,
			VariantDescription:     row.VariantDescription,
			DownloadURL:            row.DownloadURL,
			Checksum:               row.Checksum,
			PartitionsURL:          row.DownloadURLPartitions,
			PartitionsChecksum:     row.ChecksumPartitions,
			SpiffsURL:              row.DownloadURLSpiffs,
			SpiffsChecksum:         row.ChecksumSpiffs,
			SpiffsAddress:          row.SpiffsAddress,
			PostInstallInstr:       row.PostInstallInstr,
			Weight:                 row.Weight,
		}

		family.Firmware = append(family.Firmware, fw)

		project, ok := cat.Projects[row.ProjectID]
		if !ok {
			logger.Debug("Firmware row references unknown project", logger.Fields{
				"firmware": row.Name, "project_id": row.ProjectID,
			})
			continue
		}
		if projectFamily, ok := project.Families[row.FamilyID]; ok {
			projectFamily.Firmware = append(projectFamily.Firmware, fw)
		}
	}
	return nil
}
