// Command holotype prints reproducible binomial names for a date and an
// index, and recovers the date and index from a name.
//
//	holotype 7                          # today's name number 7
//	holotype -d 2026-01-04 -t demo 42   # dated, salted
//	holotype -x -t demo Vermigos hybridus
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newApp(os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
