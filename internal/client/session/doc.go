// Package session holds the client's authentication state.
//
// A Decoder turns a server-issued JWT into Claims without verifying its
// signature; the server stays authoritative. A Manager owns the current
// State (token, claims, decode flag), keeps it in step with the token store,
// and fans session Events out to subscribers in subscription order.
//
// The Manager is constructed explicitly and handed to whoever needs it
// (views, route guard, API client); there is no package-level session.
package session
