package party

import (
	"testing"

	"github.com/zkboo-go/zkboo/tape"
	"github.com/zkboo-go/zkboo/word"
)

func TestNewAndReadTape(t *testing.T) {
	var key tape.Key
	p, err := New([]word.Word{word.Word32(1)}, key, 3, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = p.ReadTape()
	_ = p.ReadTape()
	_ = p.ReadTape()
}

func TestSendAndReadView(t *testing.T) {
	var key tape.Key
	p, err := New(nil, key, 0, 32)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.SendMsg(word.Word32(42))
	if got := p.ReadView(); got != word.Word(word.Word32(42)) {
		t.Errorf("got %v, want 42", got)
	}
}
