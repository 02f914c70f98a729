/*
File    : mxc/cmd/mxc/util.go
Package : main
*/
package main

import (
	"io"
	"os"
)

func newStdoutWriter() io.Writer { return os.Stdout }
