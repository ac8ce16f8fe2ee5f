// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

// Package policy implements the ownership-scoped access rules that gate
// every document operation against the store.
//
// The evaluator is a pure function of (caller identity, document path,
// operation kind). It holds no state, talks to no storage engine, and is
// consulted uniformly at every store boundary, which makes the whole rule
// set unit-testable as a static table.
package policy

import "strings"

// Operation is the kind of document operation being evaluated.
// A live subscription is a continuous read and is evaluated as OpRead.
type Operation int

const (
	OpCreate Operation = iota
	OpRead
	OpWrite
)

// String implements fmt.Stringer for log output.
func (o Operation) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Identity is the authenticated caller's unique reference. The empty string
// means the caller is not authenticated.
type Identity string

// Decision is the outcome of a policy evaluation.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Catalog collections readable by any authenticated caller and writable by
// no request path at all (catalog maintenance is administrative and happens
// outside this API).
const (
	CollectionAllergens = "allergens"
	CollectionResources = "educational_resources"
	CollectionUsers     = "users"
)

// Evaluate applies the access rules to one document operation.
//
// Rules, in order of matching; absence of a matching rule is a denial:
//   - "allergens/{id}" and "educational_resources/{id}" (and the bare
//     collections, for snapshot and subscribe reads): read iff
//     authenticated; create/write never.
//   - "users/{uid}": create iff the caller is authenticated and is {uid}.
//     No rule grants bare read or write on this exact path.
//   - "users/{uid}/**": read and write iff the caller is authenticated and
//     is {uid}. Nested creates (log appends, first profile save) count as
//     writes into the owner's namespace and follow the same rule.
func Evaluate(identity Identity, path string, op Operation) Decision {
	segments := split(path)
	if len(segments) == 0 {
		return Deny
	}

	authenticated := identity != ""

	switch segments[0] {
	case CollectionAllergens, CollectionResources:
		if len(segments) > 2 {
			return Deny
		}
		if op == OpRead && authenticated {
			return Allow
		}
		return Deny

	case CollectionUsers:
		if len(segments) < 2 || !authenticated || Identity(segments[1]) != identity {
			return Deny
		}
		if len(segments) == 2 {
			// Only creation of the caller's own user document is granted;
			// bare reads and writes of "users/{uid}" fail closed.
			if op == OpCreate {
				return Allow
			}
			return Deny
		}
		return Allow
	}

	return Deny
}

// Authorize evaluates the operation and maps a negative outcome to one of
// the sentinel errors: ErrAuthenticationRequired when no identity is
// present, ErrPermissionDenied when an identity is present but the rules do
// not grant the operation. Returns nil when the operation is allowed.
func Authorize(identity Identity, path string, op Operation) error {
	if identity == "" {
		return ErrAuthenticationRequired
	}
	if Evaluate(identity, path, op) != Allow {
		return ErrPermissionDenied
	}
	return nil
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
