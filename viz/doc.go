// Package viz defines the render-hint surface shared by every dsviz engine.
//
// The engines never draw. They compute target coordinates for their nodes,
// interpolate the current coordinates toward those targets once per frame,
// and report which node identifiers are highlighted. A drawing layer (raylib,
// a terminal renderer, a test) consumes that through the Hints interface.
//
// Layout is decoupled from any window: TreeLayout and ListLayout take the
// origin and spacing explicitly, so nothing in this module queries a screen.
package viz
