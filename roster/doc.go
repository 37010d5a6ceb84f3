// Package roster provides built-in roster source implementations.
//
// Roster sources narrow the set of users eligible for assignment.
// The package includes:
//
//   - Static: Fixed member list managed by the embedding application
//
// Custom sources can be implemented by satisfying the types.RosterSource interface.
package roster
