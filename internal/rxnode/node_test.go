package rxnode

import (
	"bytes"
	"testing"
)

func TestInsertGetBasic(t *testing.T) {
	var root Node[int]

	if _, replaced := root.Insert([]byte("test"), 1); replaced {
		t.Fatalf("first insert should not replace")
	}
	if _, replaced := root.Insert([]byte("team"), 2); replaced {
		t.Fatalf("second insert should not replace")
	}
	if _, replaced := root.Insert([]byte("toast"), 3); replaced {
		t.Fatalf("third insert should not replace")
	}

	for k, want := range map[string]int{"test": 1, "team": 2, "toast": 3} {
		got, ok := root.Get([]byte(k))
		if !ok || got != want {
			t.Fatalf("Get(%q) = %d, %v; want %d, true", k, got, ok, want)
		}
	}
	if _, ok := root.Get([]byte("te")); ok {
		t.Fatalf("Get(te) should not find a value-less edge node")
	}
}

func TestInsertReplacesExistingValue(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("key"), 1)
	prev, replaced := root.Insert([]byte("key"), 2)
	if !replaced || prev != 1 {
		t.Fatalf("expected replace of 1 with 2, got prev=%d replaced=%v", prev, replaced)
	}
	got, _ := root.Get([]byte("key"))
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestInsertSplitsSharedEdge(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("romane"), 1)
	root.Insert([]byte("romanus"), 2)
	root.Insert([]byte("romulus"), 3)
	root.Insert([]byte("rom"), 4)

	for k, want := range map[string]int{"romane": 1, "romanus": 2, "romulus": 3, "rom": 4} {
		got, ok := root.Get([]byte(k))
		if !ok || got != want {
			t.Fatalf("Get(%q) = %d, %v; want %d, true", k, got, ok, want)
		}
	}
}

func TestRemoveMergesSingleChild(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("test"), 1)
	root.Insert([]byte("team"), 2)
	root.Insert([]byte("toast"), 3)

	if _, removed := root.Remove([]byte("team")); !removed {
		t.Fatalf("expected team to be removed")
	}
	if _, removed := root.Remove([]byte("toast")); !removed {
		t.Fatalf("expected toast to be removed")
	}

	got, ok := root.Get([]byte("test"))
	if !ok || got != 1 {
		t.Fatalf("expected test=1 to survive, got %d ok=%v", got, ok)
	}
	if len(root.children) != 1 {
		t.Fatalf("expected a single merged child remaining, got %d", len(root.children))
	}
}

func TestRemoveAbsentKey(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("a"), 1)
	if _, removed := root.Remove([]byte("b")); removed {
		t.Fatalf("removing an absent key should report false")
	}
	if _, removed := root.Remove([]byte("ab")); removed {
		t.Fatalf("removing a key that only extends an existing one should report false")
	}
}

func TestInsertEmptyKeyIsRoot(t *testing.T) {
	var root Node[int]
	root.Insert(nil, 42)
	got, ok := root.Get(nil)
	if !ok || got != 42 {
		t.Fatalf("expected root value 42, got %d ok=%v", got, ok)
	}
}

func TestInsertVeryLongKeyChains(t *testing.T) {
	var root Node[int]
	long := bytes.Repeat([]byte("a"), 600)
	root.Insert(long, 1)
	got, ok := root.Get(long)
	if !ok || got != 1 {
		t.Fatalf("expected long key lookup to succeed, got %d ok=%v", got, ok)
	}

	shorter := long[:300]
	root.Insert(shorter, 2)
	if got, ok := root.Get(shorter); !ok || got != 2 {
		t.Fatalf("expected shorter prefix lookup to succeed, got %d ok=%v", got, ok)
	}
	if got, ok := root.Get(long); !ok || got != 1 {
		t.Fatalf("expected full long key unaffected, got %d ok=%v", got, ok)
	}
}

func TestFindPrefixExactSubtree(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("car"), 1)
	root.Insert([]byte("cart"), 2)
	root.Insert([]byte("care"), 3)
	root.Insert([]byte("dog"), 4)

	node, consumed, ok := root.FindPrefix([]byte("car"))
	if !ok {
		t.Fatalf("expected prefix car to match")
	}
	_ = consumed
	if !node.HasValue() {
		t.Fatalf("expected car itself to carry a value")
	}
}

func TestFindPrefixExhaustedMidEdge(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("abcde"), 1)

	node, _, ok := root.FindPrefix([]byte("abc"))
	if !ok {
		t.Fatalf("expected prefix abc to match mid-edge")
	}
	if !bytes.Equal(node.Key(), []byte("abcde")) {
		t.Fatalf("expected the matched node to be the abcde edge, got %q", node.Key())
	}
}

func TestFindPrefixTrueDivergenceMidEdge(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("abc"), 1)
	root.Insert([]byte("abcde"), 2)

	if _, _, ok := root.FindPrefix([]byte("abd")); ok {
		t.Fatalf("expected no match when prefix diverges from every edge")
	}
}

func TestFindPrefixNoMatch(t *testing.T) {
	var root Node[int]
	root.Insert([]byte("abc"), 1)
	if _, _, ok := root.FindPrefix([]byte("xyz")); ok {
		t.Fatalf("expected no match for an unrelated prefix")
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	children := []Node[int]{
		New[int]([]byte("apple")),
		New[int]([]byte("banana")),
		New[int]([]byte("cherry")),
	}

	if common, idx := LongestCommonPrefix(children, []byte("bandana")); common != 3 || idx != 1 {
		t.Fatalf("expected common=3 idx=1, got common=%d idx=%d", common, idx)
	}
	if common, idx := LongestCommonPrefix(children, []byte("date")); common != 0 || idx != 3 {
		t.Fatalf("expected common=0 idx=3 (insert at end), got common=%d idx=%d", common, idx)
	}
	if common, idx := LongestCommonPrefix(children, []byte("apple")); common != 5 || idx != 0 {
		t.Fatalf("expected common=5 idx=0, got common=%d idx=%d", common, idx)
	}
}
