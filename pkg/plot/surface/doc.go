// Package surface provides display backends for rendered grid images.
//
// # Overview
//
// Every backend implements the plot.Surface contract: it accepts a finished
// raster and a window title and makes it visible somewhere. The core plotting
// logic never knows which backend it is driving, which keeps the coordinate
// mapping testable headlessly.
//
// Available backends:
//
//   - [PNG]: upscales each frame and writes it as a PNG file with a title
//     banner, one file per Show call.
//   - [Terminal]: draws the frame into the terminal using colored half-block
//     glyphs, two raster rows per character cell.
//   - [Server]: an HTTP live preview. Frames are kept in memory and served
//     to browsers; connected clients are notified over a websocket when a
//     new frame arrives.
//   - [Discard]: drops every frame. Useful in benchmarks and tests.
//
// # Example
//
//	s, err := surface.NewPNG("out", surface.WithPNGScale(16))
//	if err != nil {
//	    return err
//	}
//	p := plot.New(s)
//	p.Map(ctx, m, "FMM")  // writes out/fmm-map.png
package surface
