// Package checker scans JSON and YAML documents for null values that
// are not explicitly permitted.
//
// A document is checked breadth-first from its root. Every object
// member and array element that holds null is classified: if its path
// appears in the allow-list of optional paths it is permitted,
// otherwise it is recorded in InvalidFields. Paths use dotted notation
// with bracketed indices, for example "user.friends[1].profile.age".
// Sibling paths always precede descendant paths in the output.
//
// The root itself is never classified, so a document that is entirely
// null (or a bare scalar) is vacuously valid. Allow-list entries that
// match nothing are ignored.
//
// Basic usage:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithFilePath("payload.json"),
//	    checker.WithOptionalPaths("user.profile.address.city"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, path := range result.InvalidFields {
//	    fmt.Println(path)
//	}
//
// Report converts a result to the compact wire form exchanged with
// other tooling: {"status":"success"} or
// {"status":"error","invalid_fields":[...]}.
package checker
