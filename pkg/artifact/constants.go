package artifact

// Kind names one constituent binary of a firmware bundle. The local file
// for a kind is always "<kind>.bin".
type Kind string

// The fixed set of artifact kinds.
const (
	KindBootloader Kind = "bootloader"
	KindFirmware   Kind = "firmware"
	KindPartitions Kind = "partitions"
	KindSpiffs     Kind = "spiffs"
	KindOtadata    Kind = "otadata"
)

// Kinds lists every artifact kind a firmware bundle may consist of.
var Kinds = []Kind{KindBootloader, KindFirmware, KindPartitions, KindSpiffs, KindOtadata}

const (
	// minValidURLLength guards against empty or placeholder download URLs;
	// anything shorter cannot be a real source.
	minValidURLLength = 12

	// minValidAddressLength guards against empty flash address fields for
	// the optional SPIFFS and OTA-data artifacts.
	minValidAddressLength = 2
)
