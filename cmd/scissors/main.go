// SPDX-License-Identifier: MIT

// Command scissors builds SCISSORS vector representations from ROCS
// similarity matrices stored in SQLite array stores.
//
//	scissors choose-basis -i library.db --size 0.1 --seed 1 --bb-out bb.db --lb-out lb.db
//	scissors vectors --bb bb.db --lb lb.db -o vectors.db --shape-dim 50
//	scissors similarity -i vectors.db --channel shape -o sim.db
//	scissors spectrum --bb bb.db --channel shape --plot spectrum.png
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("scissors: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
