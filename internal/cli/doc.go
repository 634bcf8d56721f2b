// Package cli implements the brickstack command-line interface.
//
// # Commands
//
//   - generate: build a new puzzle and write its artifacts
//   - render: turn a saved puzzle document into other formats
//   - show: print a saved puzzle with terminal colors
//   - browse: page through the manual interactively
//   - verify: check a solution outline against a puzzle
//   - cache: clear the cache or print its location
//   - config init: write a default config file
//
// # Configuration
//
// Settings come from the defaults, then the file named by --config (or
// $BRICKSTACK_CONFIG), then any flag set explicitly on the command line.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Status lines
// go to stdout unless an artifact is streamed there with "-o -".
package cli
