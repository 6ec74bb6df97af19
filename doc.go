// Package reshape describes the shape of structured data and maps one shape
// into another.
//
// A Schema is an ordered, immutable set of named Fields built once with
// NewSchema(...).Field(...).MustBuild(). Instances of a schema hold values for
// every declared field, validate recursively, and serialize into plain
// map[string]any trees, optionally dropping nullish values.
//
// A Mapping binds named transformation Nodes (see package transform) to an
// optional source and target schema. Apply evaluates every node against the
// loaded source and builds a target Instance, or a Generic record when no
// target schema is declared.
//
// Design policy:
//   - Keep public APIs in the root package; transformations live in transform/,
//     wire-format bridges in codec/, and primitive coercions in internal/.
//   - Definitions are immutable after Build and safe for concurrent reads.
//     Instances are not safe for concurrent mutation.
//   - Serialization is not validation: Serialize never fails and passes invalid
//     data through. Call Validate explicitly.
//
// Typical usage:
//
//	person := reshape.NewSchema("Person").
//		Field("first_name", reshape.Unicode()).
//		Field("last_name", reshape.Unicode()).
//		MustBuild()
//
//	m := reshape.NewMapping("RowToPerson").
//		Target(person).
//		Field("first_name", transform.Get("given")).
//		Field("last_name", transform.Get("family")).
//		MustBuild()
//
//	rec, err := m.Apply(map[string]any{"given": "Ada", "family": "Lovelace"})
//	out := rec.Serialize(true)
package reshape
