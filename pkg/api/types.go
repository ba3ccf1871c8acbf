package api

// ProjectRow is one record of the project list endpoint.
type ProjectRow struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Weight           int    `json:"weight"`
	Description      string `json:"description"`
	SupportURL       string `json:"support_url"`
	ProjectURL       string `json:"project_url"`
	DocumentationURL string `json:"documentation_url"`
	ShowInStandalone bool   `json:"show_in_standalone_flasher"`
}

// FamilyRow is one record of the firmware family list endpoint.
type FamilyRow struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	FlashMethod           string `json:"flash_method"`
	DetectionFamily       string `json:"detection_family"`
	DownloadURLBootloader string `json:"download_url_bootloader"`
	DownloadURLOtadata    string `json:"download_url_otadata"`
	OtadataAddress        string `json:"otadata_address"`
	ChecksumBootloader    string `json:"checksum_bootloader"`
	ChecksumOtadata       string `json:"checksum_otadata"`
	Use1200BpsTouch       bool   `json:"use_1200_bps_touch"`
}

// FirmwareRow is one record of the firmware list endpoint.
type FirmwareRow struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	Version                string `json:"version"`
	FamilyID               int    `json:"family_id"`
	Variant                string `json:"variant"`
	IsFermentrackSupported bool   `json:"is_fermentrack_supported"`
	InError                bool   `json:"in_error"`
	Description            string `json:"description"`
	VariantDescription     string `json:"variant_description"`
	DownloadURL            string `json:"download_url"`
	PostInstallInstr       string `json:"post_install_instructions"`
	Weight                 int    `json:"weight"`
	DownloadURLPartitions  string `json:"download_url_partitions"`
	DownloadURLSpiffs      string `json:"download_url_spiffs"`
	Checksum               string `json:"checksum"`
	ChecksumPartitions     string `json:"checksum_partitions"`
	ChecksumSpiffs         string `json:"checksum_spiffs"`
	SpiffsAddress          string `json:"spiffs_address"`
	ProjectID              int    `json:"project_id"`
}

// FlashVerifyRequest is the body sent to the flash verify endpoint shortly
// before a device is flashed.
type FlashVerifyRequest struct {
	FirmwareID     int    `json:"firmware_id"`
	Flasher        string `json:"flasher"`
	FlasherVersion string `json:"flasher_version"`
}

// FlashVerifyResponse is the reply of the flash verify endpoint. On
// success the message carries the authoritative checksum for the firmware.
type FlashVerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusSuccess is the status value the service reports for a positive
// flash verification.
const StatusSuccess = "success"
