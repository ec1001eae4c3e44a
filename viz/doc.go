// Package viz renders samples for visual inspection.
//
// Render composes the sample's image, mask and (when present) prediction
// into a Figure of side-by-side panels. Rendering is purely a presentation
// concern: the input sample is read but never modified.
package viz
