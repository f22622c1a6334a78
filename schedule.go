package afaes

import (
	"golang.org/x/crypto/cryptobyte"
)

const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

const (
	rounds128 = 10
	rounds192 = 12
	rounds256 = 14
)

// readWords splits key into consecutive 4-byte words.
// The caller guarantees len(key) == 4*len(w).
func readWords(key []byte, w []word) {
	s := cryptobyte.String(key)
	for i := range w {
		if !s.CopyBytes(w[i][:]) {
			panic("afaes: key shorter than its schedule")
		}
	}
	if !s.Empty() {
		panic("afaes: key longer than its schedule")
	}
}

// packRoundKeys groups the expanded words four at a time, one round key per group.
func packRoundKeys(dst []Block, w []word) {
	for i := range dst {
		for col := 0; col < 4; col++ {
			dst[i].setColumn(col, w[4*i+col])
		}
	}
}

func expandKey128(key *[KeySize128]byte) (rk [rounds128 + 1]Block) {
	var w [4 * (rounds128 + 1)]word
	readWords(key[:], w[:4])
	for i := 4; i < len(w); i++ {
		if i%4 == 0 {
			w[i] = xorWord(scheduleCore(w[i-1], i/4), w[i-4])
		} else {
			w[i] = xorWord(w[i-1], w[i-4])
		}
	}
	packRoundKeys(rk[:], w[:])
	return
}

func expandKey192(key *[KeySize192]byte) (rk [rounds192 + 1]Block) {
	var w [4 * (rounds192 + 1)]word
	readWords(key[:], w[:6])
	step := 1
	for i := 6; i < len(w); i++ {
		if i%6 == 0 {
			w[i] = xorWord(scheduleCore(w[i-1], step), w[i-6])
			step++
		} else {
			w[i] = xorWord(w[i-1], w[i-6])
		}
	}
	packRoundKeys(rk[:], w[:])
	return
}

func expandKey256(key *[KeySize256]byte) (rk [rounds256 + 1]Block) {
	var w [4 * (rounds256 + 1)]word
	readWords(key[:], w[:8])
	step := 1
	for i := 8; i < len(w); i++ {
		switch i % 8 {
		case 0:
			w[i] = xorWord(scheduleCore(w[i-1], step), w[i-8])
			step++
		case 4:
			w[i] = xorWord(subWord(w[i-1]), w[i-8])
		default:
			w[i] = xorWord(w[i-1], w[i-8])
		}
	}
	packRoundKeys(rk[:], w[:])
	return
}

func marshalRoundKeys(rk []Block) []byte {
	b := cryptobyte.NewFixedBuilder(make([]byte, 0, len(rk)*BlockSize))
	for i := range rk {
		b.AddBytes(rk[i][:])
	}
	return b.BytesOrPanic()
}
