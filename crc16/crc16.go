// Package crc16 implements the 16-bit cyclic redundancy check with polynomial 0x1021 (x^16 + x^12 + x^5 + 1),
// an initial register value of 0xFFFF, MSB-first bit order, and no final XOR; this is commonly known as
// CRC-16/CCITT-FALSE.
package crc16

import "hash"

const (
	// Polynomial is the generator polynomial, with the x^16 term implied.
	Polynomial = 0x1021
	// Init is the register's starting value.
	Init = 0xFFFF
	// Size is the size of a CRC-16 checksum in bytes.
	Size = 2
)

// Update returns the result of adding the bytes in p to the crc, one bit at a time.
func Update(crc uint16, p []byte) uint16 {
	for _, data := range p {
		for b := 0; b < 8; b++ {
			x := ((crc >> 15) ^ uint16(data>>7)) & 1
			crc <<= 1
			if x != 0 {
				crc ^= Polynomial
			}
			data <<= 1
		}
	}
	return crc
}

// Checksum returns the CRC-16 checksum of data.
func Checksum(data []byte) uint16 {
	return Update(Init, data)
}

// Digest is a running CRC-16 computation. It implements hash.Hash, with Sum appending the checksum big-endian.
// A Digest isn't safe for concurrent use.
type Digest struct {
	crc uint16
}

var _ hash.Hash = (*Digest)(nil)

// New returns a new Digest computing the CRC-16 checksum.
func New() *Digest {
	return &Digest{crc: Init}
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize returns the Digest's block size; CRC-16 works a byte at a time.
func (d *Digest) BlockSize() int { return 1 }

// Reset restores the Digest to its initial state.
func (d *Digest) Reset() { d.crc = Init }

// Write adds p to the running checksum. It never returns an error.
func (d *Digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

// Sum16 returns the checksum of the data written so far.
func (d *Digest) Sum16() uint16 { return d.crc }

// Sum appends the current checksum to in, big-endian, and returns the result.
func (d *Digest) Sum(in []byte) []byte {
	return append(in, byte(d.crc>>8), byte(d.crc))
}
