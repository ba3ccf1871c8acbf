package fsutil

// File and directory permission constants used consistently throughout the
// application.
const (
	// FileModeDefault is the mode for regular files (-rw-r--r--).
	FileModeDefault = 0o644
	// FileModeSecure is the mode for sensitive files (-rw-r-----).
	FileModeSecure = 0o640
	// DirModeDefault is the mode for directories (drwxr-xr-x).
	DirModeDefault = 0o755
	// DirModeSecure is the mode for sensitive directories (drwxr-x---).
	DirModeSecure = 0o750
)
