package model

import (
	"errors"
	"testing"
)

type genus struct{ name string }

func (g genus) String() string { return g.name }

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Alice", "Alice"},
		{30, "30"},
		{float64(25), "25"},
		{true, "true"},
		{genus{name: "Rosa"}, "Rosa"},
		{errors.New("boom"), "boom"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRowFacetsDistinguishNilFromEmpty(t *testing.T) {
	var row Row
	if row.HasHeaders() || row.HasColumns() || row.HasActions() || row.HasAdminActions() {
		t.Fatalf("zero row should define no facets")
	}

	row = Row{Actions: []Action{}, AdminActions: []Action{}}
	if !row.HasActions() || !row.HasAdminActions() {
		t.Fatalf("empty non-nil slices count as defined")
	}
}

func TestListingAggregates(t *testing.T) {
	listing := Listing{Rows: []Row{
		{Headers: []string{"Name"}},
		{Actions: []Action{{URL: "/edit/1", Icon: "bi-pencil"}}},
	}}
	if !listing.AnyActions() {
		t.Fatalf("expected actions")
	}
	if listing.AnyAdminActions() {
		t.Fatalf("did not expect admin actions")
	}
	if got := listing.Headers(); len(got) != 1 || got[0] != "Name" {
		t.Fatalf("unexpected headers: %v", got)
	}
	if (Listing{}).Headers() != nil {
		t.Fatalf("empty listing has no headers")
	}
}

func TestViewerIsAdmin(t *testing.T) {
	if Anonymous().IsAdmin() {
		t.Fatalf("anonymous viewer is not admin")
	}
	if (Viewer{Role: "user"}).IsAdmin() {
		t.Fatalf("user is not admin")
	}
	if !(Viewer{Role: "admin"}).IsAdmin() {
		t.Fatalf("admin role should be admin")
	}
	for _, role := range []string{" admin ", "Admin", "ADMIN", "administrator"} {
		if (Viewer{Role: role}).IsAdmin() {
			t.Fatalf("role %q must not count as admin", role)
		}
	}
}
