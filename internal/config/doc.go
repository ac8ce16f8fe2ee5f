// Package config loads and validates the configuration of both safebite
// binaries. Values are collected from environment variables and command-line
// flags and merged through a builder, with later non-zero sources layered on
// top of earlier ones.
package config
