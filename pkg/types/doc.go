// Package types defines the shared public types of confkit: typed errors
// with stable kinds, load/save option structs, and the KeyLine record
// returned by key enumeration.
//
// Most users should import pkg/conf, which re-exports everything here.
package types
