package config

const (
	// MaxProjectNameLength is the maximum length for project names.
	// Names should be short and descriptive.
	MaxProjectNameLength = 255

	// MaxEntryTitleLength is the maximum length for entry titles.
	MaxEntryTitleLength = 255

	// MaxUploadBytes caps a single attachment upload.
	MaxUploadBytes = 25 << 20 // 25 MiB

	// DefaultRecentPaths is how many distinct workspace paths the
	// recent-paths listing returns by default.
	DefaultRecentPaths = 20
)
