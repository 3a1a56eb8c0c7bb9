package view

import (
	"testing"

	"github.com/zkboo-go/zkboo/word"
)

func TestSendAndReadNext(t *testing.T) {
	v := New([]word.Word{word.Word32(1), word.Word32(2)})
	v.SendMsg(word.Word32(10))
	v.SendMsg(word.Word32(20))

	if got := v.ReadNext(); got != word.Word(word.Word32(10)) {
		t.Errorf("got %v, want 10", got)
	}
	if got := v.ReadNext(); got != word.Word(word.Word32(20)) {
		t.Errorf("got %v, want 20", got)
	}
}

func TestReadPastEndPanics(t *testing.T) {
	v := New(nil)
	v.SendMsg(word.Word32(1))
	v.ReadNext()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic reading past end of view")
		}
	}()
	v.ReadNext()
}

func TestReset(t *testing.T) {
	v := New(nil)
	v.SendMsg(word.Word32(5))
	v.ReadNext()
	v.Reset()
	if got := v.ReadNext(); got != word.Word(word.Word32(5)) {
		t.Errorf("after reset, got %v, want 5", got)
	}
}
