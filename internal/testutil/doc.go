// Package testutil provides testing utilities and helpers for the webflow
// library.
package testutil
