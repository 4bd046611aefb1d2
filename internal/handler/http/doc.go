// Package http implements the HTTP transport of the auth server.
//
// Requests are decoded here, the session cookie is turned into a
// models.SessionContext, and service results are written back as JSON
// together with any cookie directive the service produced.
package http
