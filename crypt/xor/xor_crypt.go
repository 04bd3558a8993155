// Package xor implements crypt.Crypt as an XOR with an LXM keystream. It is
// an obfuscation layer, not encryption.
package xor

import (
	"encoding/binary"
	"io"

	"github.com/tutils/lxmseq/crypt"
	"github.com/tutils/lxmseq/lxm"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	key lxm.State
}

// NewCrypt create a new Crypt. Every encoder and decoder starts its own
// keystream at key, so streams never share generator position.
func NewCrypt(key lxm.State) crypt.Crypt {
	return &xorCrypt{key: key}
}

func (c *xorCrypt) NewEncoder(w io.Writer) io.Writer {
	return &xorEncoder{
		w:  w,
		ks: newKeystream(c.key),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader) io.Reader {
	return &xorDecoder{
		r:  r,
		ks: newKeystream(c.key),
	}
}

// keystream hands out generator words byte by byte, low byte first.
type keystream struct {
	src  *lxm.Source
	word [8]byte
	left int
}

func newKeystream(key lxm.State) *keystream {
	return &keystream{src: lxm.NewSourceFromState(key)}
}

func (k *keystream) xor(dst, src []byte) {
	for i, b := range src {
		if k.left == 0 {
			binary.LittleEndian.PutUint64(k.word[:], k.src.Uint64())
			k.left = len(k.word)
		}
		dst[i] = b ^ k.word[len(k.word)-k.left]
		k.left--
	}
}

type xorEncoder struct {
	w   io.Writer
	ks  *keystream
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	e.ks.xor(e.buf, p)
	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r  io.Reader
	ks *keystream
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		d.ks.xor(p[:n], p[:n])
	}
	return n, err
}
