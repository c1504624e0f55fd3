// Package domain defines the data contracts shared between the extraction,
// normalization and export layers: the raw table shape produced by file
// extractors, the normalized student record, and the fixed column set of
// the import template.
package domain
