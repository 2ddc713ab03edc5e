// Package viz draws lessons in the terminal.
//
//   - [Canvas]: braille pixel canvas with per-cell colour
//   - [Camera] and [Render3D]: wireframe projection with painter's ordering
//   - [RenderScene]: lowers a scene.Scene (axes, vectors, planes, meshes)
//     to coloured edges
//   - [TextRenderer]: typesets TeX matrices as bracket art
//   - Theme selection with 5 built-in colour schemes
//
// Blankable scenes render as an empty canvas until revealed.
package viz
