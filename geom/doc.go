// Package geom provides the small 2D vector arithmetic shared by every
// navgrid package: positions and velocities are continuous pixel-space
// values, while grid addressing stays integral (see package grid).
//
// Vec is a value type; all operations return new vectors and never
// mutate their receiver.
package geom
