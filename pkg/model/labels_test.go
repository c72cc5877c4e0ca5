package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderLabel(t *testing.T) {
	cases := map[string]string{
		"name":         "Name",
		"genus_id":     "Genus",
		"species_list": "Species list",
		"first_NAME":   "First name",
		"_id":          " id",
		"":             "",
	}
	for input, want := range cases {
		if got := HeaderLabel(input); got != want {
			t.Fatalf("HeaderLabel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRelatedTitle(t *testing.T) {
	if got := RelatedTitle("species_list", "genus"); got != "Species_list of genus" {
		t.Fatalf("RelatedTitle: %q", got)
	}
	if got := RelatedTitle("MEMBERS_list", "team"); got != "Members_list of team" {
		t.Fatalf("RelatedTitle lowercases the tail: %q", got)
	}
}

func TestCaseConversions(t *testing.T) {
	if got := SnakeToCamel("one_to_many"); got != "OneToMany" {
		t.Fatalf("SnakeToCamel: %q", got)
	}
	if got := SnakeToLowerCamel("one_to_many"); got != "oneToMany" {
		t.Fatalf("SnakeToLowerCamel: %q", got)
	}
	cases := map[string]string{
		"OneToManyList": "one_to_many_list",
		"HTTPServer":    "http_server",
		"genus":         "genus",
		"Genus":         "genus",
	}
	for input, want := range cases {
		if got := CamelToSnake(input); got != want {
			t.Fatalf("CamelToSnake(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDefaultActions(t *testing.T) {
	got := DefaultActions("/garden/", "genus", 3)
	want := []Action{
		{URL: "/garden/genus/read/3", Icon: IconRead},
		{URL: "/garden/genus/update/3", Icon: IconUpdate},
		{URL: "/garden/genus/delete/3", Icon: IconDelete},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}

	if got := RelatedURL("", "genus", 3, "species_list"); got != "/genus/read/3/species_list" {
		t.Fatalf("related url: %q", got)
	}
	if got := AddActionURL("/garden", "genus", 3, "species_list"); got != "/garden/genus/update/3/add/species_list" {
		t.Fatalf("add action url: %q", got)
	}
}

func TestExpandActions(t *testing.T) {
	if ExpandActions(nil, 1) != nil {
		t.Fatalf("expected nil templates to stay undefined")
	}
	got := ExpandActions([]Action{{URL: "/user/remove/{id}", Icon: "bi bi-x-circle"}}, 42)
	if len(got) != 1 || got[0].URL != "/user/remove/42" {
		t.Fatalf("unexpected expansion: %#v", got)
	}
}
