// Package render turns cycle results into user-facing output: localized
// text for the console, a static HTML body sheet, and a CSV cycle history.
//
// Every renderer implements app.Renderer.
package render
