package fsh

import "io/fs"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Shell terminated normally
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration file or flags
	ExitNotFound         = 11 // Startup path does not exist
	ExitPermissionDenied = 12 // OS denied access during startup
)

// SizeUnknown is the sentinel returned by Item.Size when a directory's
// recursive size could not be determined because part of its tree was not
// readable. It is distinct from a legitimate zero-byte result.
const SizeUnknown int64 = -1

const (
	// DefaultDirPerm is the permission mode for directories the shell creates.
	DefaultDirPerm fs.FileMode = 0o755

	// DefaultFilePerm is the permission mode for files the shell creates.
	DefaultFilePerm fs.FileMode = 0o644

	// TimeLayout is the format used when rendering item creation times.
	TimeLayout = "2006-01-02 15:04"
)
