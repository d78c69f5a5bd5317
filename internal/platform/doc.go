package platform

// Package platform contains OS integration glue: opening files with the
// default application, revealing paths in the system file manager, path and
// config-directory helpers, and the process privilege capability.
