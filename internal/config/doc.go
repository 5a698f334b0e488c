// Package config loads, normalizes, and validates Slate configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such
// as SLATE_FARM_ROOT. The Config type centralizes every knob the CLI
// needs: project and farm roots, bridge drive layout, scan patterns,
// timecode tool binaries, and log output.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths, canonical log formats, and clear validation
// errors.
package config
