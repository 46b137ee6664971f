// Package domain translates MCP tool calls into Sudoku engine operations.
//
// Each tool pairs a schema constructor with a typed handler: grid strings
// parse into boards, the engine runs, and the outcome surfaces as a
// structured result MCP clients can render. Handlers hold no protocol
// state; the only collaborator is an optional puzzle store.
package domain
