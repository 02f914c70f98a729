/*
File    : mxc/cmd/mxc/serve_cmd.go
Package : main

`mxc serve <port>` — a TCP line-oriented translation service, grounded on
main/main.go's startServer/handleClient (one goroutine per connection).
Each accepted connection gets a google/uuid request id attached to its
diagnostic log lines, grounded on google/uuid appearing in the retrieval
pack (gaarutyunov-guix/go.mod, Tangerg-lynx). Each invocation of the
translator per connection stays single-threaded and stateless (spec.md §5);
only the accept loop is concurrent.
*/
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:      "serve",
	Usage:     "run a TCP line-oriented translation service",
	ArgsUsage: "<port>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return usageError("serve requires a port")
		}
		return runServe(c.Args().First())
	},
}

func runServe(port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen on :%s: %w", port, err)
	}
	defer listener.Close()
	cyanColor.Printf("mxc translation service listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

// handleConn services one connection: each line of input is translated
// independently and the emitted text (or a diagnostic) is written back,
// terminated by a blank line so line-oriented clients can detect the end
// of one response.
func handleConn(conn net.Conn) {
	defer conn.Close()

	reqID := uuid.New().String()
	cyanColor.Printf("[%s] connected from %s\n", reqID, conn.RemoteAddr())
	defer cyanColor.Printf("[%s] disconnected\n", reqID)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		out, err := translateSource(line, false)
		if err != nil {
			fmt.Fprintf(conn, "ERROR %s\n\n", err)
			redColor.Printf("[%s] %v\n", reqID, err)
			continue
		}
		fmt.Fprintf(conn, "%s\n", out)
	}
}
