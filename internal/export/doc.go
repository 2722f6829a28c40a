// Package export writes extraction results to CSV, XLSX, and a
// plain-text summary report.
package export
