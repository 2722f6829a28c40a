// Package pipeline ties recognition and extraction together: page
// image in, composition records out. Multi-page documents can be
// processed concurrently over a bounded worker pool.
package pipeline
