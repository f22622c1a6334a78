// Package afaes implements the AES block cipher (FIPS-197) for 128, 192 and 256-bit keys.
package afaes

import (
	"crypto/cipher"
	"strconv"

	"github.com/aacfactory/afaes/internal/alias"
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "afaes: invalid key size " + strconv.Itoa(int(k))
}

// NewCipher selects AES-128, AES-192 or AES-256 by the length of key.
func NewCipher(key []byte) (cipher.Block, error) {
	k := len(key)
	switch k {
	case KeySize128:
		return New128([KeySize128]byte(key)), nil
	case KeySize192:
		return New192([KeySize192]byte(key)), nil
	case KeySize256:
		return New256([KeySize256]byte(key)), nil
	default:
		return nil, KeySizeError(k)
	}
}

// Cipher128 is AES with a 128-bit key. It is safe for concurrent use.
type Cipher128 struct {
	rk [rounds128 + 1]Block
}

func New128(key [KeySize128]byte) *Cipher128 {
	return &Cipher128{rk: expandKey128(&key)}
}

func (c *Cipher128) Rounds() int { return rounds128 }

func (c *Cipher128) RoundKeys() []byte { return marshalRoundKeys(c.rk[:]) }

func (c *Cipher128) EncryptBlock(src Block) Block { return encryptBlock(c.rk[:], src) }

func (c *Cipher128) DecryptBlock(src Block) Block { return decryptBlock(c.rk[:], src) }

func (c *Cipher128) BlockSize() int { return BlockSize }

func (c *Cipher128) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := c.EncryptBlock(Block(src[:BlockSize]))
	copy(dst, out[:])
}

func (c *Cipher128) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := c.DecryptBlock(Block(src[:BlockSize]))
	copy(dst, out[:])
}

// Cipher192 is AES with a 192-bit key. It is safe for concurrent use.
type Cipher192 struct {
	rk [rounds192 + 1]Block
}

func New192(key [KeySize192]byte) *Cipher192 {
	return &Cipher192{rk: expandKey192(&key)}
}

func (c *Cipher192) Rounds() int { return rounds192 }

func (c *Cipher192) RoundKeys() []byte { return marshalRoundKeys(c.rk[:]) }

func (c *Cipher192) EncryptBlock(src Block) Block { return encryptBlock(c.rk[:], src) }

func (c *Cipher192) DecryptBlock(src Block) Block { return decryptBlock(c.rk[:], src) }

func (c *Cipher192) BlockSize() int { return BlockSize }

func (c *Cipher192) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := c.EncryptBlock(Block(src[:BlockSize]))
	copy(dst, out[:])
}

func (c *Cipher192) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := c.DecryptBlock(Block(src[:BlockSize]))
	copy(dst, out[:])
}

// Cipher256 is AES with a 256-bit key. It is safe for concurrent use.
type Cipher256 struct {
	rk [rounds256 + 1]Block
}

func New256(key [KeySize256]byte) *Cipher256 {
	return &Cipher256{rk: expandKey256(&key)}
}

func (c *Cipher256) Rounds() int { return rounds256 }

func (c *Cipher256) RoundKeys() []byte { return marshalRoundKeys(c.rk[:]) }

func (c *Cipher256) EncryptBlock(src Block) Block { return encryptBlock(c.rk[:], src) }

func (c *Cipher256) DecryptBlock(src Block) Block { return decryptBlock(c.rk[:], src) }

func (c *Cipher256) BlockSize() int { return BlockSize }

func (c *Cipher256) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := c.EncryptBlock(Block(src[:BlockSize]))
	copy(dst, out[:])
}

func (c *Cipher256) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := c.DecryptBlock(Block(src[:BlockSize]))
	copy(dst, out[:])
}

func checkBlocks(dst, src []byte) {
	if len(src) < BlockSize {
		panic("afaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("afaes: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("afaes: invalid buffer overlap")
	}
}

// encryptBlock runs len(rk)-1 rounds; the last one skips mixColumns.
func encryptBlock(rk []Block, src Block) Block {
	rounds := len(rk) - 1
	state := xorBlock(src, rk[0])
	for round := 1; round < rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		state = xorBlock(state, rk[round])
	}
	subBytes(&state)
	shiftRows(&state)
	return xorBlock(state, rk[rounds])
}

func decryptBlock(rk []Block, src Block) Block {
	rounds := len(rk) - 1
	state := xorBlock(src, rk[rounds])
	invSubBytes(&state)
	invShiftRows(&state)
	for round := rounds - 1; round >= 1; round-- {
		state = xorBlock(state, rk[round])
		invMixColumns(&state)
		invSubBytes(&state)
		invShiftRows(&state)
	}
	return xorBlock(state, rk[0])
}
