// Package domain contains the core model for bashy: the effective
// configuration, the fixed reply the responder serves, and the probe
// types used to check a running responder.
//
// The domain does not depend on YAML parsing, net/http or the filesystem.
// Infra adapters map into and from these types.
package domain
