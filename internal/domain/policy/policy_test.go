package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCaller_IsAuthenticated(t *testing.T) {
	assert.False(t, Caller{}.IsAuthenticated())
	assert.True(t, Caller{ID: uuid.New()}.IsAuthenticated())
}

func TestIdentityPredicates(t *testing.T) {
	self := Caller{ID: uuid.New()}
	other := uuid.New()

	assert.True(t, CanReadIdentity(self))
	assert.False(t, CanReadIdentity(Caller{}))

	assert.True(t, CanWriteIdentity(self, self.ID))
	assert.False(t, CanWriteIdentity(self, other))
	assert.False(t, CanWriteIdentity(Caller{}, other))
}

func TestVendorPredicates(t *testing.T) {
	owner := Caller{ID: uuid.New()}
	stranger := Caller{ID: uuid.New()}

	assert.True(t, CanReadVendor(owner))
	assert.True(t, CanReadVendor(stranger))
	assert.False(t, CanReadVendor(Caller{}))

	assert.True(t, CanWriteVendor(owner, owner.ID))
	assert.False(t, CanWriteVendor(stranger, owner.ID))
	assert.False(t, CanWriteVendor(Caller{}, owner.ID))
}

func TestCanAccessSubscription(t *testing.T) {
	owner := Caller{ID: uuid.New()}
	stranger := Caller{ID: uuid.New()}

	assert.True(t, CanAccessSubscription(owner, owner.ID))
	assert.False(t, CanAccessSubscription(stranger, owner.ID))
	assert.False(t, CanAccessSubscription(Caller{}, owner.ID))
}

func TestCallPredicates(t *testing.T) {
	customer := Caller{ID: uuid.New()}
	vendorOwner := Caller{ID: uuid.New()}
	stranger := Caller{ID: uuid.New()}

	// Visible to both parties of the call, invisible to anyone else.
	assert.True(t, CanReadCall(customer, customer.ID, vendorOwner.ID))
	assert.True(t, CanReadCall(vendorOwner, customer.ID, vendorOwner.ID))
	assert.False(t, CanReadCall(stranger, customer.ID, vendorOwner.ID))
	assert.False(t, CanReadCall(Caller{}, customer.ID, vendorOwner.ID))

	assert.True(t, CanInsertCall(customer, customer.ID))
	assert.False(t, CanInsertCall(customer, uuid.New()))

	// Only the vendor side authors transitions, never the customer.
	assert.True(t, CanUpdateCall(vendorOwner, vendorOwner.ID))
	assert.False(t, CanUpdateCall(customer, vendorOwner.ID))
	assert.False(t, CanUpdateCall(Caller{}, vendorOwner.ID))
}
