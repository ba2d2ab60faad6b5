// Package config loads typed configuration from environment variables with
// github.com/caarlos0/env, reading a .env file first when one exists.
// Results are cached per type, so every package can call Load for its own
// struct without reparsing.
package config
