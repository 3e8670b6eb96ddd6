// Package domain translates MCP tool calls into tracker events.
//
// Each tool parses part names at the boundary, runs the matching event
// through the tracker session, and returns the full body snapshot so
// clients never need a follow-up read. Rejected events surface as tool
// errors and leave the body unchanged.
package domain
