// Package imaging handles the raster side of the pipeline: loading page
// images from disk, preparing them for recognition, and rendering debug
// overlays.
//
// Preprocessing mirrors what works on real certificate scans - grayscale
// conversion, a small median filter against scanner speckle, and a
// modest contrast boost. All operations return new images; inputs are
// never modified.
package imaging
