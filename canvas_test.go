package canvas_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damajor/canvas"
	"github.com/damajor/canvas/backend/record"
)

// newRecorded builds a surface over a fresh recording target.
func newRecorded(width, height int) (*canvas.Surface, *record.Target) {
	rt := record.NewTarget()
	s := canvas.New(width, height, canvas.WithTarget(rt))
	return s, rt
}

func TestNewDimensions(t *testing.T) {
	s, _ := newRecorded(120, 80)
	if s.Width() != 120 || s.Height() != 80 {
		t.Errorf("New(120, 80) = %dx%d, want 120x80", s.Width(), s.Height())
	}
	if s.Scale() != 1 {
		t.Errorf("initial scale = %v, want 1", s.Scale())
	}
}

func TestNewZeroLeavesDefault(t *testing.T) {
	s, _ := newRecorded(0, 80)
	if s.Width() != canvas.DefaultWidth {
		t.Errorf("New(0, 80) width = %d, want default %d", s.Width(), canvas.DefaultWidth)
	}
	if s.Height() != 80 {
		t.Errorf("New(0, 80) height = %d, want 80", s.Height())
	}

	s, _ = newRecorded(0, 0)
	if s.Width() != canvas.DefaultWidth || s.Height() != canvas.DefaultHeight {
		t.Errorf("New(0, 0) = %dx%d, want defaults", s.Width(), s.Height())
	}
}

func TestSetDimensionUnconditional(t *testing.T) {
	s, _ := newRecorded(120, 80)

	// Unlike New/SetWidth/SetHeight, zero dimensions are applied.
	s.SetDimension(0, 0)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("SetDimension(0, 0) = %dx%d, want 0x0", s.Width(), s.Height())
	}
	if s.Scale() != 1 {
		t.Errorf("SetDimension without scale changed scale to %v", s.Scale())
	}

	s.SetDimension(50, 60, 2.5)
	if s.Width() != 50 || s.Height() != 60 {
		t.Errorf("SetDimension(50, 60) = %dx%d", s.Width(), s.Height())
	}
	if s.Scale() != 2.5 {
		t.Errorf("SetDimension scale = %v, want 2.5", s.Scale())
	}
}

func TestSetScaleUnvalidated(t *testing.T) {
	s, _ := newRecorded(0, 0)
	s.SetScale(0.25)
	if s.Scale() != 0.25 {
		t.Errorf("Scale() = %v, want 0.25", s.Scale())
	}
}

func TestClearCoversFullTarget(t *testing.T) {
	s, rt := newRecorded(120, 80)
	s.Clear()

	want := []record.Op{
		{Kind: record.OpClearRect, Args: []float64{0, 0, 120, 80}},
	}
	if diff := cmp.Diff(want, rt.Recorder().Ops()); diff != "" {
		t.Errorf("Clear() ops mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRestoreDelegate(t *testing.T) {
	s, rt := newRecorded(0, 0)
	s.Save()
	s.Restore()

	want := []record.Op{
		{Kind: record.OpSave},
		{Kind: record.OpRestore},
	}
	if diff := cmp.Diff(want, rt.Recorder().Ops()); diff != "" {
		t.Errorf("Save/Restore ops mismatch (-want +got):\n%s", diff)
	}
	if d := rt.Recorder().Depth(); d != 0 {
		t.Errorf("depth after balanced Save/Restore = %d, want 0", d)
	}
}

func TestReverseLeavesUnbalancedSave(t *testing.T) {
	s, rt := newRecorded(100, 50)
	before := rt.Recorder().Depth()
	s.Reverse()

	if d := rt.Recorder().Depth(); d != before+1 {
		t.Errorf("depth after Reverse = %d, want %d", d, before+1)
	}
	want := []record.Op{
		{Kind: record.OpSave},
		{Kind: record.OpTranslate, Args: []float64{100, 0}},
		{Kind: record.OpScale, Args: []float64{-1, 1}},
	}
	if diff := cmp.Diff(want, rt.Recorder().Ops()); diff != "" {
		t.Errorf("Reverse() ops mismatch (-want +got):\n%s", diff)
	}

	// The caller owns the unbalanced save.
	s.Restore()
	if d := rt.Recorder().Depth(); d != before {
		t.Errorf("depth after Restore = %d, want %d", d, before)
	}
}
