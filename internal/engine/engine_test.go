package engine

import (
	"reflect"
	"testing"

	"github.com/joshuapare/confkit/internal/profile"
)

func newINI(lines ...string) *Engine {
	e := New(profile.Resolve(profile.TokenINI))
	e.Reset(lines)
	return e
}

func TestFindDuplicateKeyIteration(t *testing.T) {
	e := newINI("A=1", "A=2", "A=3")

	for i := 0; i < 3; i++ {
		if !e.Find("A") {
			t.Fatalf("Find #%d failed", i+1)
		}
		if e.find.index != i {
			t.Fatalf("Find #%d matched index %d, want %d", i+1, e.find.index, i)
		}
	}
	if e.Find("A") {
		t.Fatal("fourth Find should fail, duplicates exhausted")
	}
}

func TestFindNewKeyResetsCursor(t *testing.T) {
	e := newINI("A=1", "B=2", "A=3")

	if !e.Find("A") || e.find.index != 0 {
		t.Fatal("first Find(A) should match line 0")
	}
	if !e.Find("B") || e.find.index != 1 {
		t.Fatal("Find(B) should match line 1")
	}
	// Cursor was reset by the key change: Find(A) starts over.
	if !e.Find("A") || e.find.index != 0 {
		t.Fatal("Find(A) after key change should match line 0 again")
	}
}

func TestFindWhitespaceInsensitive(t *testing.T) {
	for _, line := range []string{"A=1", "A = 1", "  A=1", "\tA\t=\t1"} {
		e := newINI(line)
		if !e.Find("A") {
			t.Errorf("Find(A) should match %q", line)
		}
	}
}

func TestFindMatchesCommentedForm(t *testing.T) {
	e := newINI(";A=1")
	if !e.Find("A") {
		t.Fatal("Find should match the commented form")
	}
	if !e.IsCommented() {
		t.Fatal("matched line should report commented")
	}
}

func TestGetStripsDecoration(t *testing.T) {
	e := New(profile.Resolve(profile.TokenPHP))
	e.Reset([]string{"define('HOST','localhost');"})

	if !e.Find("HOST") {
		t.Fatal("Find failed")
	}
	v, ok := e.Get()
	if !ok || v != "localhost" {
		t.Fatalf("Get = %q, %v; want %q, true", v, ok, "localhost")
	}
}

func TestGetWithoutMatch(t *testing.T) {
	e := newINI("A=1")
	if v, ok := e.Get(); ok || v != "" {
		t.Fatalf("Get before Find = %q, %v; want empty, false", v, ok)
	}
	e.Find("missing")
	if _, ok := e.Get(); ok {
		t.Fatal("Get after failed Find should not succeed")
	}
}

func TestGetDefault(t *testing.T) {
	e := newINI("A=1")
	if v := e.GetDefault("A", "x"); v != "1" {
		t.Fatalf("GetDefault(A) = %q, want 1", v)
	}
	if v := e.GetDefault("B", "x"); v != "x" {
		t.Fatalf("GetDefault(B) = %q, want default", v)
	}
}

func TestSetCreateOrUpdate(t *testing.T) {
	e := New(profile.Resolve(profile.TokenPHP))
	e.Reset(nil)

	e.SetKey("FOO", "bar")
	want := []string{"define('FOO','bar');"}
	if !reflect.DeepEqual(e.Block(), want) {
		t.Fatalf("after create: %v, want %v", e.Block(), want)
	}

	e.SetKey("FOO", "baz")
	want = []string{"define('FOO','baz');"}
	if !reflect.DeepEqual(e.Block(), want) {
		t.Fatalf("after update: %v, want %v (no duplicate)", e.Block(), want)
	}
}

func TestSetWithoutContextIsNoop(t *testing.T) {
	e := newINI("A=1")
	e.Set("9")
	if !reflect.DeepEqual(e.Block(), []string{"A=1"}) {
		t.Fatalf("Set without key context mutated block: %v", e.Block())
	}
}

func TestSetAppendEstablishesMatch(t *testing.T) {
	e := newINI()
	e.SetKey("A", "1")
	// The appended line is now the current match: comment it.
	e.Comment()
	if !reflect.DeepEqual(e.Block(), []string{";A=1"}) {
		t.Fatalf("block = %v", e.Block())
	}
}

func TestRemove(t *testing.T) {
	e := newINI("A=1", "B=2")
	e.Find("A")
	e.Remove()
	if !reflect.DeepEqual(e.Block(), []string{"B=2"}) {
		t.Fatalf("block = %v", e.Block())
	}
	// Match context is gone.
	if _, ok := e.Get(); ok {
		t.Fatal("Get after Remove should fail")
	}
	e.Remove() // no-op
	if len(e.Block()) != 1 {
		t.Fatal("second Remove must be a no-op")
	}
}

func TestRemoveAll(t *testing.T) {
	e := newINI("A=1", "B=2", "A=3", "A=4")
	if n := e.RemoveAll("A"); n != 3 {
		t.Fatalf("RemoveAll removed %d lines, want 3", n)
	}
	if !reflect.DeepEqual(e.Block(), []string{"B=2"}) {
		t.Fatalf("block = %v", e.Block())
	}
	if n := e.RemoveAll("A"); n != 0 {
		t.Fatalf("RemoveAll on absent key removed %d", n)
	}
}

func TestCommentToggle(t *testing.T) {
	e := newINI("A=1")
	e.Find("A")

	e.Comment()
	if !e.IsCommented() {
		t.Fatal("line should be commented")
	}
	if e.Block()[0] != ";A=1" {
		t.Fatalf("commented line = %q", e.Block()[0])
	}

	e.Comment() // already commented: no-op
	if e.Block()[0] != ";A=1" {
		t.Fatalf("double comment mutated line: %q", e.Block()[0])
	}

	e.Uncomment()
	if e.IsCommented() {
		t.Fatal("line should be uncommented")
	}
	if e.Block()[0] != "A=1" {
		t.Fatalf("round trip altered line: %q", e.Block()[0])
	}

	e.Uncomment() // not commented: no-op
	if e.Block()[0] != "A=1" {
		t.Fatalf("uncomment of plain line mutated it: %q", e.Block()[0])
	}
}

func TestUncommentTrimmedPrefixFallback(t *testing.T) {
	// conf profile comments with "# "; the file has "#Directive" without
	// the space, so the trimmed form must be removed instead.
	e := New(profile.Resolve(profile.TokenConf))
	e.Reset([]string{"#ServerName example.org"})

	if !e.Find("ServerName") {
		t.Fatal("Find failed")
	}
	if !e.IsCommented() {
		t.Fatal("line should report commented")
	}
	e.Uncomment()
	if got := e.Block()[0]; got != "ServerName example.org" {
		t.Fatalf("uncommented line = %q", got)
	}
}

func TestIsolateOccurrenceAdvance(t *testing.T) {
	doc := []string{"BEGIN", "x", "END", "BEGIN", "y", "END"}
	e := newINI(doc...)

	if !e.Isolate("BEGIN", "END") {
		t.Fatal("first Isolate failed")
	}
	if !reflect.DeepEqual(e.Block(), []string{"x"}) {
		t.Fatalf("first region = %v, want [x]", e.Block())
	}

	if !e.Isolate("BEGIN", "END") {
		t.Fatal("second Isolate failed")
	}
	if !reflect.DeepEqual(e.Block(), []string{"y"}) {
		t.Fatalf("second region = %v, want [y]", e.Block())
	}

	if e.Isolate("BEGIN", "END") {
		t.Fatal("third Isolate should fail, occurrences exhausted")
	}
	// Failure leaves the full document in the block.
	if !reflect.DeepEqual(e.Block(), doc) {
		t.Fatalf("after failed Isolate block = %v, want full document", e.Block())
	}
}

func TestIsolateDifferentMarkersRestart(t *testing.T) {
	e := newINI("BEGIN", "x", "END", "OPEN", "y", "CLOSE")

	if !e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate BEGIN/END failed")
	}
	if !e.Isolate("OPEN", "CLOSE") {
		t.Fatal("Isolate OPEN/CLOSE failed")
	}
	if !reflect.DeepEqual(e.Block(), []string{"y"}) {
		t.Fatalf("block = %v, want [y]", e.Block())
	}
	// Back to the first pair: the signature changed, so it restarts at
	// occurrence zero.
	if !e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate BEGIN/END after signature change failed")
	}
	if !reflect.DeepEqual(e.Block(), []string{"x"}) {
		t.Fatalf("block = %v, want [x]", e.Block())
	}
}

func TestIsolateMissingMarkers(t *testing.T) {
	e := newINI("a", "b")
	if e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate should fail without markers")
	}
	if e.Isolated() {
		t.Fatal("failed Isolate must leave the document unisolated")
	}

	// End marker only before the begin marker: no qualifying end.
	e = newINI("END", "BEGIN", "x")
	if e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate should fail when no end follows the begin")
	}
}

func TestIsolateEmptyMarkersDisable(t *testing.T) {
	e := newINI("BEGIN", "x", "END")
	if !e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate failed")
	}
	if e.Isolate("", "") {
		t.Fatal("empty markers must fail")
	}
	if e.Isolated() {
		t.Fatal("empty markers must disable isolation")
	}
	if !reflect.DeepEqual(e.Block(), []string{"BEGIN", "x", "END"}) {
		t.Fatalf("block = %v, want full document", e.Block())
	}
}

func TestIsolateMarkersAreExactMatch(t *testing.T) {
	e := newINI("  BEGIN", "x", "END")
	if e.Isolate("BEGIN", "END") {
		t.Fatal("marker matching must be exact, not substring or trimmed")
	}
}

func TestIsolateCommitsPriorEdits(t *testing.T) {
	e := newINI("BEGIN", "A=1", "END", "BEGIN", "A=2", "END")

	e.Isolate("BEGIN", "END")
	e.SetKey("A", "10")
	e.Isolate("BEGIN", "END") // merges the first region back

	e.Merge()
	want := []string{"BEGIN", "A=10", "END", "BEGIN", "A=2", "END"}
	if !reflect.DeepEqual(e.Lines(), want) {
		t.Fatalf("document = %v, want %v", e.Lines(), want)
	}
}

func TestMergeIdempotent(t *testing.T) {
	e := newINI("BEGIN", "x", "END")
	e.Isolate("BEGIN", "END")

	e.Merge()
	once := append([]string(nil), e.Block()...)
	e.Merge()
	if !reflect.DeepEqual(e.Block(), once) {
		t.Fatalf("second Merge changed the document: %v vs %v", e.Block(), once)
	}
}

func TestMergeResetsIsolationCursor(t *testing.T) {
	e := newINI("BEGIN", "x", "END")
	e.Isolate("BEGIN", "END")
	e.Merge()
	// After an explicit Merge the occurrence counter restarts.
	if !e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate after Merge should select the first region again")
	}
	if !reflect.DeepEqual(e.Block(), []string{"x"}) {
		t.Fatalf("block = %v, want [x]", e.Block())
	}
}

func TestCreateRegion(t *testing.T) {
	e := newINI("top=1")
	e.CreateRegion("# BEGIN app", "# END app")
	e.SetKey("A", "1")
	e.Merge()

	want := []string{"top=1", "# BEGIN app", "A=1", "# END app"}
	if !reflect.DeepEqual(e.Block(), want) {
		t.Fatalf("document = %v, want %v", e.Block(), want)
	}
}

func TestRemoveRegion(t *testing.T) {
	e := newINI("top=1", "BEGIN", "A=1", "A=2", "END")
	if !e.Isolate("BEGIN", "END") {
		t.Fatal("Isolate failed")
	}
	e.RemoveRegion()
	e.Merge()

	want := []string{"top=1"}
	if !reflect.DeepEqual(e.Block(), want) {
		t.Fatalf("document = %v, want %v (region and markers gone)", e.Block(), want)
	}
}

func TestRemoveRegionWithoutIsolation(t *testing.T) {
	e := newINI("a", "b")
	e.RemoveRegion()
	if !reflect.DeepEqual(e.Block(), []string{"a", "b"}) {
		t.Fatalf("RemoveRegion without isolation mutated document: %v", e.Block())
	}
}

func TestFindScopedToIsolatedRegion(t *testing.T) {
	e := newINI("A=outer", "BEGIN", "A=inner", "END")
	e.Isolate("BEGIN", "END")

	if !e.Find("A") {
		t.Fatal("Find failed")
	}
	v, _ := e.Get()
	if v != "inner" {
		t.Fatalf("Get = %q, want the in-region value", v)
	}
	// Only one A inside the region.
	if e.Find("A") {
		t.Fatal("second Find should not see the out-of-region duplicate")
	}
}

func TestKeys(t *testing.T) {
	e := newINI("A=1", "", ";B=2", "not a key line")
	got := e.Keys()
	if len(got) != 2 {
		t.Fatalf("Keys returned %d entries: %+v", len(got), got)
	}
	if got[0].Key != "A" || got[0].Value != "1" || got[0].Commented || got[0].Index != 0 {
		t.Errorf("entry 0 = %+v", got[0])
	}
	if got[1].Key != "B" || got[1].Value != "2" || !got[1].Commented || got[1].Index != 2 {
		t.Errorf("entry 1 = %+v", got[1])
	}
}

func TestKeysPHP(t *testing.T) {
	e := New(profile.Resolve(profile.TokenPHP))
	e.Reset([]string{
		"<?php",
		"define('HOST','localhost');",
		"//define('DEBUG','1');",
		"?>",
	})
	got := e.Keys()
	if len(got) != 2 {
		t.Fatalf("Keys returned %d entries: %+v", len(got), got)
	}
	if got[0].Key != "HOST" || got[0].Value != "localhost" {
		t.Errorf("entry 0 = %+v", got[0])
	}
	if got[1].Key != "DEBUG" || got[1].Value != "1" || !got[1].Commented {
		t.Errorf("entry 1 = %+v", got[1])
	}
}

func TestSetProfileChangesSynthesis(t *testing.T) {
	e := newINI()
	e.SetKey("A", "1")
	e.SetProfile(profile.Resolve(profile.TokenPHP))
	e.SetKey("B", "2")

	want := []string{"A=1", "define('B','2');"}
	if !reflect.DeepEqual(e.Block(), want) {
		t.Fatalf("block = %v, want %v", e.Block(), want)
	}
}
