// Package geo provides the 2D primitives shared by the layout engine:
// points, axis-aligned rectangles, polar/cartesian conversion, bounding
// boxes, and the affine view transform used for zoom and pan.
//
// # Coordinate System
//
// All coordinates are in user units (typically pixels in SVG). The y axis
// grows downward, matching screen conventions. Angles are expressed in
// degrees and measured clockwise from the positive x axis.
//
// # View Transform
//
// [Transform] maps world coordinates to screen coordinates as
// screen = world*zoom + pan. Callers must keep zoom strictly positive;
// the viewport package enforces this through its positive minimum zoom.
package geo
