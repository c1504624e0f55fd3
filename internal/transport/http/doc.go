// Package http contains the chi HTTP handlers for the roster normalizer:
// multipart upload and normalization, the schema listing, and health.
package http
