package dataset

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/goliatone/go-listgen/pkg/model"
)

// ExportColumns returns the CSV columns of a model: its raw attributes minus
// the one-to-many ones.
func (m *Model) ExportColumns() []string {
	out := make([]string, 0, len(m.Attributes))
	for _, attr := range m.Attributes {
		if _, ok := childModel(attr); ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}

// ExportFilename is the download name used for a model export.
func ExportFilename(name string) string {
	return normaliseName(name) + "_export.csv"
}

// FullExportFilename is the download name used for a full dataset archive.
func (d *Dataset) FullExportFilename() string {
	return d.Name + "_full_export.zip"
}

// WriteCSV writes the named model as CSV: a header row of column names
// followed by one line per record with raw values.
func (d *Dataset) WriteCSV(w io.Writer, name string) error {
	m, err := d.Model(name)
	if err != nil {
		return err
	}

	columns := m.ExportColumns()
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("dataset: write csv header: %w", err)
	}
	line := make([]string, len(columns))
	for _, record := range m.Records {
		for i, column := range columns {
			line[i] = model.Stringify(record.Value(column))
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("dataset: write csv record %d: %w", record.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: flush csv: %w", err)
	}
	return nil
}

// WriteZip writes every model as `<model>.csv` into a zip archive.
func (d *Dataset) WriteZip(w io.Writer, modified time.Time) error {
	zw := zip.NewWriter(w)
	for _, name := range d.Models() {
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name + ".csv",
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("dataset: create zip entry %s: %w", name, err)
		}
		if err := d.WriteCSV(entry, name); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("dataset: close zip: %w", err)
	}
	return nil
}
