// Package file provides file-based configuration storage.
//
// Configuration lives in a TOML file under the lookfar config directory
// (~/.lookfar by default). Nested tables are flattened into dot-notation
// keys, so [search] api_key becomes "search.api_key". A Watcher can
// observe the file and reload the store when it changes on disk.
package file
