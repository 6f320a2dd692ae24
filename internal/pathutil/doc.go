// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides canonical path construction for document
// traversal.
//
// A path uniquely identifies a node's position within one document tree.
// Object field access appends "." + key (the dot is omitted when the
// parent is the root, whose path is the empty string); array element
// access appends "[" + index + "]" with no separator:
//
//	Child("", "user")            // "user"
//	Child("user", "profile")     // "user.profile"
//	Index("user.friends", 1)     // "user.friends[1]"
//	Child("user.friends[1]", "age") // "user.friends[1].age"
//
// Keys are never escaped by default, so a key containing "." or "["
// yields a path that is indistinguishable from nesting syntax. This is
// deliberate: allow-lists are compared by exact string equality and
// must match paths produced by other implementations of the same
// grammar. [EscapeKey] supports an opt-in escaped mode for callers that
// need unambiguous paths.
//
// # PathBuilder
//
// [PathBuilder] builds paths incrementally with push/pop semantics and
// is suited to recursive descent where the full string is only
// materialized when a finding is reported:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("user")
//	path.PushIndex(0)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
//	if duplicateKey {
//	    warn(path.String())
//	}
//
// Use [Get] to obtain a pooled PathBuilder and [Put] to return it.
package pathutil
