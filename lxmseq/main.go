package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/tutils/lxmseq/cmd"
)

func main() {
	if addr := os.Getenv("LXMSEQ_PPROF"); addr != "" {
		go func() {
			log.Println(http.ListenAndServe(addr, nil))
		}()
	}
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
