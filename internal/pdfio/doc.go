// Package pdfio extracts page scans from PDF certificates. Scanned
// documents carry their content as embedded images rather than a text
// layer, so the package decodes the per-page image XObjects and hands
// them to the recognition pipeline like any other input image.
package pdfio
