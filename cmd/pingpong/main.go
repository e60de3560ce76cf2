// Command pingpong runs the two demo tasks against one registry: a greeter
// that produces messages and an echo task that drains its inbox on wake.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"flit/hal"
	"flit/internal/buildinfo"
	"flit/ipc"
	"flit/sched"
	"flit/tasks/echo"
	"flit/tasks/greet"
)

const (
	taskEcho  ipc.TaskID = 1
	taskGreet ipc.TaskID = 2
)

func main() {
	var interval time.Duration
	var count int
	flag.DurationVar(&interval, "interval", 500*time.Millisecond, "Delay between greetings.")
	flag.IntVar(&count, "count", 10, "Stop after N greetings (0 = run until interrupted).")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := hal.NewLogger()
	log.WriteLineString("pingpong " + buildinfo.Short())

	rt := sched.New()
	if err := rt.Add(taskEcho, echo.New(log)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	greeter := greet.New(taskEcho, interval, count)
	err := rt.AddSender(taskGreet, sched.TaskFunc(func(c *sched.Context) error {
		// Once the greeter is done, ask the whole runtime to wind down.
		defer stop()
		return greeter.Run(c)
	}))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rt.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
