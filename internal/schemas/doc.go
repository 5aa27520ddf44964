// Package schemas defines the value types exchanged by the run log: shoes,
// runs and the closed enumerations they reference.
//
// Records validate on construction and on every assignment. Setters trim
// string input, apply the change to a copy, re-validate the whole record and
// only commit when validation passes, so a failed assignment leaves the
// record unchanged.
package schemas
