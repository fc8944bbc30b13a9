// Package coord implements the signed-axis coordinate-system model used to
// import/export Gaussian splat scenes between renderers that disagree on
// handedness and axis convention (spec.md §4.2).
//
// A CoordinateSystem names a signed-axis basis triple. Converting between
// two systems derives a 3x3 signed-permutation Transform and applies it, in
// place, to positions, rotations, scales, and spherical-harmonics bands. With
// only 9 legal bases (8 signed triples plus Unspecified) the transform
// between any pair is small enough to compute directly from the two axis
// triples rather than needing a lookup table (spec.md §9).
package coord
