// Package environment names the deployment environments an application can run
// in and normalizes the short aliases people tend to put into env files.
//
// Parse accepts the canonical names ("development", "staging", "production")
// as well as "dev", "stage" and "prod", case-insensitively. Anything else
// resolves to Development so a missing or misspelled value never enables
// production behaviour by accident.
//
// The logger package uses it to pick output defaults per environment.
package environment
