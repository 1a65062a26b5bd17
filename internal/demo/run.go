package demo

import (
	"fmt"
	"os"
	"time"

	"github.com/coopflow/coopflow"
	"github.com/spf13/cobra"
)

// newRunCmd builds a sequence of three subroutines gated behind a
// timed barrier: the barrier waits on two futures with a one-second
// timeout, and only once it settles (resolved or timed out) does the
// sequence's first subroutine step.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a sample sequence gated by a timed barrier",
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := coopflow.NewSlogSink(os.Stderr, flagLogLevel, "text")
			k := coopflow.NewKernel(coopflow.WithLogSink(sink))
			f := k.Factory()

			gate := coopflow.NewTimedBarrier(k, time.Second)
			a := coopflow.NewFuture[string](k)
			b := coopflow.NewFuture[string](k)
			gate.Add(a)
			gate.Add(b)
			k.Root().Add(gate)

			gate.OnTimedOut(func(*coopflow.TimedBarrier) {
				fmt.Println("gate: timed out waiting for inputs")
			})
			gate.Then(func() {
				fmt.Printf("gate: settled (timed_out=%v)\n", gate.TimedOut())
			})

			seq := f.NewSequence()
			gate.Then(func() {
				for i := 1; i <= 3; i++ {
					n := i
					step := f.NewSubroutine(func(g *coopflow.Generator) any {
						fmt.Printf("step %d running\n", n)
						return n
					})
					seq.Add(step)
				}
				k.Root().Add(seq)
			})

			for tick := 0; tick < flagTicks; tick++ {
				k.Update(50 * time.Millisecond)
				if tick == 5 {
					a.SetValue("a-resolved")
					b.SetValue("b-resolved")
				}
			}
			fmt.Printf("ran %d ticks, kernel time=%s, step_number=%d\n", flagTicks, k.Time(), k.StepNumber())
			return nil
		},
	}
}
