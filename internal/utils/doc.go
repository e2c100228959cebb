// Package utils provides shared low-level helpers: a synchronous JSON POST
// round-trip with Bearer authentication and status classification
// ([DoPostSync]), response-body cleanup ([CloseWithLog]), and string helpers
// used when building log output and error messages.
package utils
