package afaes

import (
	"math/rand"
	"testing"
)

func sequentialBlock() (b Block) {
	for i := range b {
		b[i] = byte(i)
	}
	return
}

func TestShiftRows(t *testing.T) {
	b := sequentialBlock()
	shiftRows(&b)
	want := Block{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	if b != want {
		t.Fatalf("shiftRows = %v, want %v", b, want)
	}
	invShiftRows(&b)
	if b != sequentialBlock() {
		t.Fatalf("invShiftRows did not restore block: %v", b)
	}
}

func TestMixColumns(t *testing.T) {
	tests := []struct {
		in, out word
	}{
		{word{0xdb, 0x13, 0x53, 0x45}, word{0x8e, 0x4d, 0xa1, 0xbc}},
		{word{0xf2, 0x0a, 0x22, 0x5c}, word{0x9f, 0xdc, 0x58, 0x9d}},
		{word{0x01, 0x01, 0x01, 0x01}, word{0x01, 0x01, 0x01, 0x01}},
		{word{0xc6, 0xc6, 0xc6, 0xc6}, word{0xc6, 0xc6, 0xc6, 0xc6}},
		{word{0xd4, 0xd4, 0xd4, 0xd5}, word{0xd5, 0xd5, 0xd7, 0xd6}},
		{word{0x2d, 0x26, 0x31, 0x4c}, word{0x4d, 0x7e, 0xbd, 0xf8}},
	}
	for _, tt := range tests {
		var b Block
		b.setColumn(2, tt.in)
		mixColumns(&b)
		if got := b.column(2); got != tt.out {
			t.Errorf("mixColumns(%x) = %x, want %x", tt.in, got, tt.out)
		}
		invMixColumns(&b)
		if got := b.column(2); got != tt.in {
			t.Errorf("invMixColumns(%x) = %x, want %x", tt.out, got, tt.in)
		}
	}
}

func TestMixColumnsInverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		var b Block
		r.Read(b[:])
		orig := b
		mixColumns(&b)
		invMixColumns(&b)
		if b != orig {
			t.Fatalf("invMixColumns(mixColumns(%x)) = %x", orig, b)
		}
	}
}

func TestSubBytes(t *testing.T) {
	b := sequentialBlock()
	subBytes(&b)
	for i, v := range b {
		if v != sbox[0][i] {
			t.Fatalf("subBytes[%d] = %#02x, want %#02x", i, v, sbox[0][i])
		}
	}
	invSubBytes(&b)
	if b != sequentialBlock() {
		t.Fatalf("invSubBytes did not restore block: %v", b)
	}
}

func TestXorBlock(t *testing.T) {
	x := sequentialBlock()
	if z := xorBlock(x, x); z != (Block{}) {
		t.Errorf("x ^ x = %v, want zero block", z)
	}
	if z := xorBlock(x, Block{}); z != x {
		t.Errorf("x ^ 0 = %v, want %v", z, x)
	}
}

func TestScheduleCore(t *testing.T) {
	// FIPS-197 A.1, i = 4: temp = 09cf4f3c.
	got := scheduleCore(word{0x09, 0xcf, 0x4f, 0x3c}, 1)
	want := word{0x8b, 0x84, 0xeb, 0x01}
	if got != want {
		t.Errorf("scheduleCore = %x, want %x", got, want)
	}
}
