// Package hcl implements the config.Loader interface for workspace
// configuration written in HCL.
package hcl
