// Package services orchestrates the roster pipeline: it dispatches files
// to the right extractor, runs the normalization core, projects results
// onto the import template, and fans a batch of files out across workers
// while collecting per-file errors.
package services
