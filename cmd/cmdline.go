package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"strings"

	"github.com/tutils/lxmseq/crypt/xor"
	"github.com/tutils/lxmseq/lxm"
)

var (
	xorCrypt = xor.NewCrypt(lxm.MustSeed("lxmseq command line"))
)

func encodeCmdline(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawURLEncoding, w1)
	w3 := xorCrypt.NewEncoder(w2)
	if err := gob.NewEncoder(w3).Encode(args); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return w1.String(), nil
}

func decodeCmdline(s string) ([]string, error) {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawURLEncoding, r1)
	r3 := xorCrypt.NewDecoder(r2)
	var args []string
	if err := gob.NewDecoder(r3).Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}
