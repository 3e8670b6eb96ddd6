// Package service wires the MCP stdio transport to the body tools.
package service
