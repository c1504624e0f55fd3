// Package app assembles the HTTP server: configuration, logging,
// middleware chain, service construction and route mounting.
package app
