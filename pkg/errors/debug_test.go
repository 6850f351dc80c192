package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/multierr"
)

func TestDumpExtractsPgxDetails(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "designs_pkey",
		TableName:      "designs",
		Message:        "duplicate key value violates unique constraint",
	}
	err := Wrap(CodeConflict, fmt.Errorf("seed designs: %w", pgErr), "seed failed")

	d := Dump(err)
	if d.PGCode != "23505" || d.PGConstraint != "designs_pkey" || d.PGTable != "designs" {
		t.Fatalf("unexpected pg details %+v", d)
	}
	if d.Code != CodeConflict {
		t.Fatalf("expected conflict code, got %s", d.Code)
	}
}

func TestDumpExtractsPqDetails(t *testing.T) {
	err := fmt.Errorf("list gallery: %w", &pq.Error{Code: "42P01", Table: "gallery_items", Message: "relation does not exist"})

	d := Dump(err)
	if d.PGCode != "42P01" || d.PGTable != "gallery_items" {
		t.Fatalf("unexpected pq details %+v", d)
	}
	if d.Code != "" {
		t.Fatalf("expected no typed code, got %s", d.Code)
	}
}

func TestDumpNil(t *testing.T) {
	if d := Dump(nil); d.TopMessage != "" || len(d.Chain) != 0 {
		t.Fatalf("expected empty dump, got %+v", d)
	}
}

func TestDumpListsCombinedCauses(t *testing.T) {
	combined := multierr.Combine(fmt.Errorf("concept 1: timeout"), fmt.Errorf("concept 3: quota"))
	d := Dump(Wrap(CodeDependency, combined, "render failed"))

	if len(d.Causes) != 2 || d.Causes[1] != "concept 3: quota" {
		t.Fatalf("expected both causes, got %v", d.Causes)
	}
}
