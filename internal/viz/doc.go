// Package viz provides terminal rendering for the portfolio splash and
// content screens.
//
//   - [PerspectiveCamera]: three.js style perspective projection
//   - [Euler] and [Mat3]: rigid rotation of a point group
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per cell)
//   - [Splash]: the splash surface, rasterizing particle frames with a
//     spring-eased fade
//   - [Theme] and [Styles]: lipgloss color schemes
package viz
