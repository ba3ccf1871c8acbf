// Package hook runs user-provided Tengo scripts around download and flash
// operations, e.g. to surface post-install instructions or gate a flash on
// an external condition.
package hook

// Type represents the event a hook script is attached to.
type Type string

// Supported hook events.
const (
	PreDownload  Type = "pre-download"
	PostDownload Type = "post-download"
	PreFlash     Type = "pre-flash"
)

// Hook is a script with the event it is attached to.
type Hook struct {
	Type    Type
	Content string
}

// Context carries firmware information into a hook script.
type Context struct {
	FirmwareName    string
	FirmwareVersion string
	ArtifactDir     string
	PostInstall     string
	Vars            map[string]interface{}
}

// Manager defines the interface for registering and running hooks.
type Manager interface {
	// Execute runs the script for the given event, if one is registered.
	Execute(hookType Type, ctx Context) error

	// AddHook registers a hook script.
	AddHook(hook Hook) error

	// RemoveHook removes the script for an event.
	RemoveHook(hookType Type) error

	// HasHook checks whether a script is registered for an event.
	HasHook(hookType Type) bool
}
