package dataset

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listgen/pkg/model"
)

func mustLoad(t *testing.T, name string) *Dataset {
	t.Helper()
	ds, err := LoadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return ds
}

func TestLoadFile_YAML(t *testing.T) {
	ds := mustLoad(t, "garden.yaml")
	if ds.Name != "garden" || ds.URLPrefix != "/garden" {
		t.Fatalf("unexpected dataset header %q %q", ds.Name, ds.URLPrefix)
	}
	if diff := cmp.Diff([]string{"genus", "species"}, ds.Models()); diff != "" {
		t.Fatalf("models mismatch (-want +got):\n%s", diff)
	}
	genus, err := ds.Model("GENUS")
	if err != nil {
		t.Fatalf("model lookup: %v", err)
	}
	if genus.Records[0].ID != 1 {
		t.Fatalf("records should be ordered by id, got %d first", genus.Records[0].ID)
	}
	species, _ := ds.Model("species")
	if species.DefaultActions {
		t.Fatalf("default actions should be disabled for species")
	}
}

func TestLoadFS_JSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "garden.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	ds, err := LoadFS(fstest.MapFS{"data/garden.json": {Data: data}}, "data/garden.json")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if ds.Name != DefaultName {
		t.Fatalf("expected default name, got %q", ds.Name)
	}
	listing, err := ds.Listing("species")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	cell := listing.Rows[0].Columns[0]
	if cell.Text() != "Rosa" || cell.SelfReferenceURL != "/garden/genus/read/1" {
		t.Fatalf("unexpected reference cell %+v", cell)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"invalid":        "{",
		"no models":      "url_prefix: /x\n",
		"blank name":     "models:\n  - name: ' '\n",
		"duplicate":      "models:\n  - name: a\n  - name: A\n",
		"missing id":     "models:\n  - name: a\n    records:\n      - {name: x}\n",
		"duplicate id":   "models:\n  - name: a\n    records:\n      - {id: 1}\n      - {id: 1}\n",
		"unknown ref":    "models:\n  - name: a\n    attributes: [b_id]\n",
		"unknown list":   "models:\n  - name: a\n    attributes: [b_list]\n",
		"list no parent": "models:\n  - name: a\n    attributes: [b_list]\n  - name: b\n    attributes: [name]\n",
		"repeat attr":    "models:\n  - name: a\n    attributes: [x, x]\n",
		"bad display":    "models:\n  - name: a\n    attributes: [x]\n    display: y\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc), name); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestListing_ProjectsRows(t *testing.T) {
	ds := mustLoad(t, "garden.yaml")

	listing, err := ds.Listing("genus")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if listing.Title != "List genus" {
		t.Fatalf("unexpected title %q", listing.Title)
	}
	if len(listing.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(listing.Rows))
	}

	rosa := listing.Rows[0]
	if diff := cmp.Diff([]string{"Name", "Family", "Species list"}, rosa.Headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	speciesCell := rosa.Columns[2]
	want := model.Cell{
		Value:            2,
		SelfReferenceURL: "/garden/genus/read/1/species_list",
		AddActionURL:     "/garden/genus/update/1/add/species_list",
	}
	if diff := cmp.Diff(want, speciesCell); diff != "" {
		t.Fatalf("one-to-many cell mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(model.DefaultActions("/garden", "genus", 1), rosa.Actions); diff != "" {
		t.Fatalf("default actions mismatch (-want +got):\n%s", diff)
	}
	wantAdmin := []model.Action{{URL: "/garden/genus/audit/1", Icon: "bi bi-clock-history"}}
	if diff := cmp.Diff(wantAdmin, rosa.AdminActions); diff != "" {
		t.Fatalf("admin actions mismatch (-want +got):\n%s", diff)
	}
	if rosa.Text() != "Rosa" {
		t.Fatalf("unexpected row text %q", rosa.Text())
	}
}

func TestListing_ReferencesAndCustomActions(t *testing.T) {
	ds := mustLoad(t, "garden.yaml")
	listing, err := ds.Listing("species")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}

	canina := listing.Rows[0]
	if got := canina.Columns[0]; got.Text() != "Rosa" || got.SelfReferenceURL != "/garden/genus/read/1" {
		t.Fatalf("unexpected reference cell %+v", got)
	}
	if diff := cmp.Diff([]model.Action{{URL: "/garden/species/photo/1", Icon: "bi bi-camera"}}, canina.Actions); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	if canina.AdminActions != nil {
		t.Fatalf("species defines no admin actions")
	}

	orphan := listing.Rows[3]
	if got := orphan.Columns[0]; got.Text() != "" || got.SelfReferenceURL != "" {
		t.Fatalf("dangling reference should render empty, got %+v", got)
	}
	if got := listing.Rows[1].Columns[2]; got.Value != nil {
		t.Fatalf("missing values stay nil, got %#v", got.Value)
	}
}

func TestRelatedListing(t *testing.T) {
	ds := mustLoad(t, "garden.yaml")

	listing, err := ds.RelatedListing("genus", 1, "species_list")
	if err != nil {
		t.Fatalf("related listing: %v", err)
	}
	if listing.Title != "Species_list of genus" {
		t.Fatalf("unexpected title %q", listing.Title)
	}
	var names []string
	for _, row := range listing.Rows {
		names = append(names, row.Columns[1].Text())
	}
	if diff := cmp.Diff([]string{"canina", "gallica"}, names); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}

	if _, err := ds.RelatedListing("genus", 1, "name"); !errors.Is(err, ErrAttributeNotFound) {
		t.Fatalf("expected ErrAttributeNotFound, got %v", err)
	}
	if _, err := ds.RelatedListing("genus", 99, "species_list"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if _, err := ds.RelatedListing("family", 1, "species_list"); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestIndex(t *testing.T) {
	listing := mustLoad(t, "garden.yaml").Index()
	if listing.Title != IndexTitle || len(listing.Rows) != 2 {
		t.Fatalf("unexpected index %+v", listing)
	}
	if listing.Rows[0].HasColumns() || listing.Rows[0].Text() != "genus" {
		t.Fatalf("index rows use the fallback path, got %+v", listing.Rows[0])
	}
}

func TestWriteCSV(t *testing.T) {
	ds := mustLoad(t, "garden.yaml")

	var buf bytes.Buffer
	if err := ds.WriteCSV(&buf, "species"); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	want := strings.Join([]string{
		"genus_id,name,note",
		`1,canina,"Dog rose, common in hedgerows"`,
		"1,gallica,",
		"2,robur,English oak",
		"9,orphan,",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := ds.WriteCSV(&buf, "genus"); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if first := strings.SplitN(buf.String(), "\n", 2)[0]; first != "name,family" {
		t.Fatalf("one-to-many columns must be skipped, got %q", first)
	}
	if ExportFilename("Genus") != "genus_export.csv" {
		t.Fatalf("unexpected export filename")
	}
	if err := ds.WriteCSV(io.Discard, "nope"); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestWriteZip(t *testing.T) {
	ds := mustLoad(t, "garden.yaml")

	var buf bytes.Buffer
	if err := ds.WriteZip(&buf, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("write zip: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"genus.csv", "species.csv"}, names); diff != "" {
		t.Fatalf("zip entries mismatch (-want +got):\n%s", diff)
	}
	if ds.FullExportFilename() != "garden_full_export.zip" {
		t.Fatalf("unexpected archive name %q", ds.FullExportFilename())
	}
}

func TestToInt(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{3, 3, true},
		{int64(4), 4, true},
		{float64(5), 5, true},
		{5.5, 0, false},
		{" 6 ", 6, true},
		{"x", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := toInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("toInt(%#v) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
