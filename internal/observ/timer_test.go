package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("collect")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "collect" || r.Phases[0].Note != "3 files" {
		t.Fatalf("report = %+v", r)
	}
	if !strings.Contains(tm.Summary(), "// 3 files") {
		t.Errorf("summary = %q", tm.Summary())
	}
}

func TestTimerAddConcurrent(t *testing.T) {
	tm := NewTimer()
	run := tm.Begin("run")
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
		}()
	}
	wg.Wait()
	tm.End(run, "")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	parse := r.Phases[1]
	if parse.Count != 8 || parse.DurationMS != 8 {
		t.Errorf("parse = %+v, want 8 files / 8ms", parse)
	}
	if r.TotalMS != r.Phases[0].DurationMS {
		t.Errorf("total %v should only count run (%v)", r.TotalMS, r.Phases[0].DurationMS)
	}
	if !strings.Contains(tm.Summary(), "(8 files)") {
		t.Errorf("summary = %q", tm.Summary())
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("y", time.Second)
	if len(tm.Report().Phases) != 0 {
		t.Error("nil timer should report nothing")
	}
}
