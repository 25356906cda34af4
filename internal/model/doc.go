package model

// Package model defines the domain data shared by the core and the UI: stream
// format descriptors and probe metadata, download modes, progress events and the
// download task/playlist state owned by the presentation layer.
