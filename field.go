package afaes

// gfMultiply multiplies a and b in GF(2^8) modulo x^8+x^4+x^3+x+1.
func gfMultiply(a, b byte) byte {
	p := byte(0)
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}
