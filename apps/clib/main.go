package main

/*
#include <stdlib.h>
*/
import "C"
import (
	"log"
	"os"
	"strings"
	"unsafe"

	"github.com/tutils/lxmseq"
	"github.com/tutils/lxmseq/cmd"
	"github.com/tutils/lxmseq/lxm"
	"github.com/tutils/lxmseq/seq"
)

//export RunCmd
func RunCmd(cargs **C.char, size C.int) {
	log.SetFlags(log.Ltime | log.Lshortfile)

	args := os.Args[:1]
	for _, p := range unsafe.Slice(cargs, int(size)) {
		args = append(args, C.GoString(p))
	}
	os.Args = args
	cmd.Execute()
}

// DrawBits returns the first n bits seeded by cseed as a NUL-terminated
// string of '0' and '1'. The caller owns the result and must free it.
//
//export DrawBits
func DrawBits(cseed *C.char, n C.int) *C.char {
	bits, _ := seq.Take(int(n), lxmseq.Bits(lxm.MustSeed(C.GoString(cseed))))
	var b strings.Builder
	for _, v := range bits {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return C.CString(b.String())
}

func main() {} // required by -buildmode=c-shared
