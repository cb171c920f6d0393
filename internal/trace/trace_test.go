package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLevelShouldEmit(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeFile, true},
		{LevelError, ScopeNode, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	if l, err := ParseLevel("detail"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel(detail) = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if m, err := ParseMode("Both"); err != nil || m != ModeBoth {
		t.Fatalf("ParseMode(Both) = %v, %v", m, err)
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat(ndjson) = %v, %v", f, err)
	}
	if _, err := ParseFormat("chrome"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestStartNestsSpans(t *testing.T) {
	ring := NewRingTracer(16, LevelDetail)
	ctx := WithTracer(context.Background(), ring)

	ctx, run := Start(ctx, ScopeDriver, "fmt")
	fctx, file := Start(ctx, ScopeFile, "file:a.kt")
	Point(fctx, ScopeFile, "cache", "hit")
	Point(fctx, ScopeNode, "node", "dropped at detail")
	file.WithExtra("changed", "true").End("")
	run.End("ok")

	evs := ring.Snapshot()
	if len(evs) != 5 {
		t.Fatalf("got %d events, want 5: %+v", len(evs), evs)
	}
	if evs[1].ParentID != run.ID() {
		t.Errorf("file span parent = %d, want %d", evs[1].ParentID, run.ID())
	}
	if evs[2].Kind != KindPoint || evs[2].ParentID != file.ID() {
		t.Errorf("point = %+v, want child of file span", evs[2])
	}
	if evs[3].Extra["changed"] != "true" {
		t.Errorf("end extra = %v", evs[3].Extra)
	}
	if evs[4].Detail != "ok" || evs[4].Kind != KindSpanEnd {
		t.Errorf("last = %+v", evs[4])
	}
	for i := 1; i < len(evs); i++ {
		if evs[i].Seq <= evs[i-1].Seq {
			t.Errorf("seq not increasing at %d", i)
		}
	}
}

func TestStartWithoutTracer(t *testing.T) {
	ctx := context.Background()
	got, sp := Start(ctx, ScopeDriver, "fmt")
	if got != ctx {
		t.Error("context changed without a tracer")
	}
	if sp.End("") != 0 || sp.ID() != 0 {
		t.Error("nop span should be inert")
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for i := range 5 {
		ring.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Name: string(rune('a' + i))})
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if strings.Join(names, "") != "cde" {
		t.Fatalf("snapshot = %v, want [c d e]", names)
	}
	if ring.Len() != 3 || ring.Dropped() != 2 {
		t.Errorf("Len() = %d, Dropped() = %d, want 3, 2", ring.Len(), ring.Dropped())
	}

	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump = %q", buf.String())
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	st.Emit(&Event{Time: time.Now(), Kind: KindSpanBegin, Scope: ScopePass, SpanID: 7, Name: "parse"})
	st.Emit(&Event{Kind: KindPoint, Scope: ScopeFile, Name: "filtered"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatal(err)
	}
	if got["name"] != "parse" || got["kind"] != "begin" || got["scope"] != "pass" {
		t.Errorf("decoded = %v", got)
	}
}

func TestTextExtrasSorted(t *testing.T) {
	ev := &Event{
		Time:  processStart,
		Kind:  KindSpanEnd,
		Name:  "file:a.kt",
		Extra: map[string]string{"z": "1", "a": "2", "m": "3"},
	}
	got := string(FormatEvent(ev, FormatText))
	if !strings.Contains(got, "← file:a.kt {a=2, m=3, z=1}") {
		t.Errorf("text = %q", got)
	}
}

type errWriter struct{ n int }

func (w *errWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestStreamKeepsFirstError(t *testing.T) {
	w := &errWriter{}
	st := NewStreamTracer(w, LevelDebug, FormatText)
	st.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Name: "a"})
	st.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Name: "b"})
	if w.n != 1 {
		t.Errorf("writes after failure: %d", w.n)
	}
	if err := st.Close(); err == nil || err.Error() != "disk full" {
		t.Errorf("Close() = %v", err)
	}
}

func TestMultiAndRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ring, ok := Ring(tr)
	if !ok {
		t.Fatal("both mode should keep a ring")
	}
	ctx := WithTracer(context.Background(), tr)
	_, sp := Start(ctx, ScopePass, "remap")
	sp.End("")
	if len(ring.Snapshot()) != 2 {
		t.Errorf("ring has %d events", len(ring.Snapshot()))
	}
	if strings.Count(buf.String(), "remap") != 2 {
		t.Errorf("stream = %q", buf.String())
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, Mode: ModeStream})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if _, ok := Ring(tr); ok {
		t.Error("nop tracer has no ring")
	}
}

func TestErrorLevelKeepsRingOnly(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelError, Mode: ModeStream, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ring, ok := Ring(tr)
	if !ok {
		t.Fatal("error level must keep a ring")
	}
	_, sp := Start(WithTracer(context.Background(), tr), ScopeFile, "file:a.kt")
	sp.End("")
	if ring.Len() != 2 || buf.Len() != 0 {
		t.Errorf("ring = %d events, stream = %q", ring.Len(), buf.String())
	}
}

func TestHeartbeatStops(t *testing.T) {
	ring := NewRingTracer(64, LevelPhase)
	hb := StartHeartbeat(ring, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	hb.Stop()
	n := len(ring.Snapshot())
	if n == 0 {
		t.Fatal("no heartbeats")
	}
	time.Sleep(5 * time.Millisecond)
	if len(ring.Snapshot()) != n {
		t.Error("heartbeat kept running after Stop")
	}
	var nilHB *Heartbeat
	nilHB.Stop()
}
