// Package errors provides the structured API errors and the RFC 7807
// problem-details handler used by the HTTP surface. Core pipeline code
// uses plain wrapped errors; this package only shapes them for clients.
package errors
