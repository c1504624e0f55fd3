// Package exporter projects normalized student records onto the fixed
// import template and serializes them as CSV with a UTF-8 BOM for Excel
// compatibility.
package exporter
