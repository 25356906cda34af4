package platform

// Package platform contains OS integration and external tooling glue: URL
// validation, filesystem helpers, executable lookup, playlist expansion via the
// ytdlp library and opening folders in the system file manager.
