// Package linalg holds the small amount of 3D arithmetic the lessons need.
//
//   - [Vec3]: points and directions
//   - [Mat3]: 3x3 transforms, set row by row and read column by column
//   - [Euler]: the view rotation every visualization carries
//   - [Plane]: ax + by + cz = d, clipped to a square extent
//
// Nothing here pivots, factors or solves. The worked examples in the lessons
// only ever add, scale and apply small fixed matrices.
package linalg
