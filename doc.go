// Package subpixel renders images in a deliberately low-resolution,
// LCD-subpixel style.
//
// An input is reduced to intensities, shrunk with a smoothing kernel and
// grown back with nearest-neighbour so that it turns into soft-edged
// blocks. The blocks are then coloured the way the red, green and blue
// stripes of an LCD panel would show them: either by rotating the
// block's intensity through the three channels column by column, or by
// shifting chroma according to where the nearby dark regions are.
//
// Process runs the pipeline on an image in memory; Run reads and writes
// files. Stages live in package screen and file handling in package
// resource.
package subpixel
