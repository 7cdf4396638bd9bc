// Package models defines the value objects used by the examples.
//
// # Person
//
// Person is a simplified person built by contract. Its invariants:
//   - FirstName and LastName are never absent once NewPerson succeeds
//   - LastName never changes and keeps the case it was given
//
// FirstName keeps its original case only until String is called: String
// upper-cases the stored first name as a side effect. That mutate-on-read
// behavior is kept on purpose as a bad-practice example and is covered by
// the tests, so do not "fix" it.
//
// A Person is owned by a single goroutine. There is no locking.
package models
