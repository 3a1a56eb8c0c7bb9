package commitment

import "testing"

func TestCommitAndOpen(t *testing.T) {
	blinding := []byte("random-blinding-key")
	message := []byte("view contents")

	c, err := Commit(blinding, message)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	ok, err := Open(c, blinding, message)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !ok {
		t.Errorf("expected opening to verify")
	}
}

func TestOpenRejectsWrongMessage(t *testing.T) {
	blinding := []byte("key")
	c, err := Commit(blinding, []byte("original"))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	ok, err := Open(c, blinding, []byte("tampered"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ok {
		t.Errorf("expected opening with tampered message to fail")
	}
}

func TestOpenRejectsWrongBlinding(t *testing.T) {
	c, err := Commit([]byte("key1"), []byte("msg"))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	ok, err := Open(c, []byte("key2"), []byte("msg"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ok {
		t.Errorf("expected opening with wrong blinding to fail")
	}
}

func TestCommitDeterministic(t *testing.T) {
	c1, _ := Commit([]byte("k"), []byte("m"))
	c2, _ := Commit([]byte("k"), []byte("m"))
	if c1 != c2 {
		t.Errorf("commit should be deterministic given the same inputs")
	}
}
