// Package vm implements the Intcode virtual machine.
//
// This package contains:
//   - Growable zero-filled integer memory
//   - Instruction decode with position/immediate/relative parameter modes
//   - The fetch-decode-execute engine
//   - Unbounded blocking I/O channels
//   - Machine instances and amplifier chain wiring
package vm
