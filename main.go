package main

import (
	"github.com/thereayou/postboard/cmd/server"
)

func main() {
	srv := server.NewServer()
	defer srv.Close()
	srv.Run()
}
