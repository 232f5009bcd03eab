package entities

import "testing"

func TestQuoteStatusValid(t *testing.T) {
	for _, s := range QuoteStatuses() {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if QuoteStatus("shipped").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestActorCanAccess(t *testing.T) {
	owner := Actor{UserID: "u-1", Role: RoleUser}
	other := Actor{UserID: "u-2", Role: RoleUser}
	admin := Actor{UserID: "a-1", Role: RoleAdmin}
	anon := Actor{}

	if !owner.CanAccess("u-1") {
		t.Fatalf("owner must access own resource")
	}
	if other.CanAccess("u-1") {
		t.Fatalf("other user must not access")
	}
	if !admin.CanAccess("u-1") {
		t.Fatalf("admin must access any resource")
	}
	if anon.CanAccess("") {
		t.Fatalf("anonymous actor must not match empty owner")
	}
}
