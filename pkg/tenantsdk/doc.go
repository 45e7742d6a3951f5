// Package tenantsdk is a typed client for the Causeway tenancy
// service. It covers the full operation surface: session login,
// identity and access decisions, organization administration and the
// invitation lifecycle. The e2e suite drives the service exclusively
// through this package.
package tenantsdk
