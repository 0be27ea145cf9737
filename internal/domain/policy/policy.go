// Package policy encodes the row-level authorization model: for every
// operation on every entity, a predicate over the acting identity and the
// target row decides whether the operation may proceed.
//
// The use-case layer consults these predicates before every write and turns
// a false result into a permission-denied error with zero rows changed.
// Reads are never rejected through this package; repositories scope their
// queries to the caller instead, so an out-of-scope read yields an empty
// result set rather than an error and row existence is not leaked.
package policy

import (
	"github.com/google/uuid"
)

// Caller is the authenticated principal resolved per request.
type Caller struct {
	ID uuid.UUID
}

// IsAuthenticated reports whether the caller carries a resolved identity.
func (c Caller) IsAuthenticated() bool {
	return c.ID != uuid.Nil
}

// CanReadIdentity: any authenticated caller may read any identity row
// (directory-style visibility).
func CanReadIdentity(caller Caller) bool {
	return caller.IsAuthenticated()
}

// CanWriteIdentity: a caller may insert or update only the identity row
// whose id equals their own.
func CanWriteIdentity(caller Caller, identityID uuid.UUID) bool {
	return caller.IsAuthenticated() && caller.ID == identityID
}

// CanReadVendor: any authenticated caller may read any vendor row.
func CanReadVendor(caller Caller) bool {
	return caller.IsAuthenticated()
}

// CanWriteVendor: a caller may insert or update only the vendor row whose
// owning identity equals their own.
func CanWriteVendor(caller Caller, vendorOwnerID uuid.UUID) bool {
	return caller.IsAuthenticated() && caller.ID == vendorOwnerID
}

// CanAccessSubscription: subscriptions are visible and writable only to the
// identity owning the target vendor. Read and write share one predicate.
func CanAccessSubscription(caller Caller, vendorOwnerID uuid.UUID) bool {
	return caller.IsAuthenticated() && caller.ID == vendorOwnerID
}

// CanReadCall: a call is visible to its customer and to the identity owning
// the target vendor; nobody else.
func CanReadCall(caller Caller, customerID, vendorOwnerID uuid.UUID) bool {
	if !caller.IsAuthenticated() {
		return false
	}

	return caller.ID == customerID || caller.ID == vendorOwnerID
}

// CanInsertCall: insert is permitted only when the caller is the stated
// customer on the new row.
func CanInsertCall(caller Caller, customerID uuid.UUID) bool {
	return caller.IsAuthenticated() && caller.ID == customerID
}

// CanUpdateCall: only the identity owning the target vendor may author a
// status transition. The originating customer cannot.
func CanUpdateCall(caller Caller, vendorOwnerID uuid.UUID) bool {
	return caller.IsAuthenticated() && caller.ID == vendorOwnerID
}
