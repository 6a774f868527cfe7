// Package render defines the rendering backend collaborator: something that
// accepts a markup file and image dimensions and writes a raster image. The
// compiler never spawns processes itself; callers inject a Backend.
package render
