package afaes

const BlockSize = 16

// Block is one AES state. Bytes fill the 4x4 matrix column by column,
// so Block[4*col+row] holds (row, col) and each column is one word.
type Block [BlockSize]byte

type word [4]byte

func at(row, col int) int {
	return 4*col + row
}

func (b *Block) column(col int) word {
	return word{b[at(0, col)], b[at(1, col)], b[at(2, col)], b[at(3, col)]}
}

func (b *Block) setColumn(col int, w word) {
	b[at(0, col)] = w[0]
	b[at(1, col)] = w[1]
	b[at(2, col)] = w[2]
	b[at(3, col)] = w[3]
}

func xorBlock(x, y Block) (z Block) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
	return
}

func xorWord(x, y word) (z word) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
	return
}

func subBytes(b *Block) {
	for i, v := range b {
		b[i] = substitute(v)
	}
}

func invSubBytes(b *Block) {
	for i, v := range b {
		b[i] = invSubstitute(v)
	}
}

// shiftRows moves (row, col) to (row, col-row), i.e. row r rotates left by r.
func shiftRows(b *Block) {
	var t Block
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[at(row, col)] = b[at(row, (col+row)%4)]
		}
	}
	*b = t
}

func invShiftRows(b *Block) {
	var t Block
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[at(row, col)] = b[at(row, (col-row+4)%4)]
		}
	}
	*b = t
}

func mixWord(m *[4][4]byte, w word) (out word) {
	for row := 0; row < 4; row++ {
		var v byte
		for i := 0; i < 4; i++ {
			v ^= gfMultiply(m[row][i], w[i])
		}
		out[row] = v
	}
	return
}

func mixColumns(b *Block) {
	for col := 0; col < 4; col++ {
		b.setColumn(col, mixWord(&mixMatrix, b.column(col)))
	}
}

func invMixColumns(b *Block) {
	for col := 0; col < 4; col++ {
		b.setColumn(col, mixWord(&invMixMatrix, b.column(col)))
	}
}

func subWord(w word) word {
	return word{substitute(w[0]), substitute(w[1]), substitute(w[2]), substitute(w[3])}
}

// scheduleCore is RotWord, SubWord and the round constant applied to the first byte.
// step counts key expansion steps from 1.
func scheduleCore(w word, step int) word {
	w = subWord(word{w[1], w[2], w[3], w[0]})
	w[0] ^= rcon[step-1]
	return w
}
