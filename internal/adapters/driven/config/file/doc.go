// Package file provides the TOML configuration store.
//
// Settings are written as nested tables ([backend], [assistant], ...) and
// read back as flat dot-notation keys, so "backend.url" addresses the url
// entry of the [backend] table.
package file
