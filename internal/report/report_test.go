package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/testutil"
)

func TestWrite(t *testing.T) {
	p := testutil.NewPlan().WithCompletedWeeks(1).WithSkipped("2025-02-04").Build()
	stats := progress.Compute(p, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := Write(&buf, p, stats, "km"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestWrite_NilPlan(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, models.PlanStats{}, "miles"); err == nil {
		t.Fatalf("expected error for nil plan")
	}
}

func TestWriteFile(t *testing.T) {
	p := testutil.NewPlan().Build()
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := WriteFile(dir, p, progress.Compute(p, time.Now()), "miles")
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "marathon_plan_2025-06-01.pdf" {
		t.Fatalf("unexpected file name %s", path)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty report, got %v", err)
	}
}

func TestStatusMark(t *testing.T) {
	done := testutil.NewWorkout().Completed().Build()
	skipped := testutil.NewWorkout().Skipped("rain").Build()
	pending := testutil.NewWorkout().Build()
	if statusMark(done) != "[x]" || statusMark(skipped) != "[-]" || statusMark(pending) != "[ ]" {
		t.Fatalf("unexpected marks")
	}
	if dayLabel("2025-06-01") != "Sun Jun 01" {
		t.Fatalf("unexpected day label %q", dayLabel("2025-06-01"))
	}
}
