package demo

import (
	"fmt"
	"os"
	"time"

	"github.com/coopflow/coopflow"
	"github.com/spf13/cobra"
)

// newInspectCmd runs a periodic timer and an any-of trigger side by
// side, printing their state every tick so their independent timing
// can be observed.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Run a periodic timer alongside a trigger and print their state each tick",
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := coopflow.NewSlogSink(os.Stderr, flagLogLevel, "text")
			k := coopflow.NewKernel(coopflow.WithLogSink(sink))
			f := k.Factory()

			periodic := coopflow.NewPeriodic(k, 200*time.Millisecond)
			k.Root().Add(periodic)

			trig := f.NewTrigger()
			winner := coopflow.NewFuture[string](k)
			loser := coopflow.NewFuture[string](k)
			trig.Add(winner)
			trig.Add(loser)
			k.Root().Add(trig)

			for tick := 0; tick < flagTicks; tick++ {
				k.Update(50 * time.Millisecond)
				if tick == 3 {
					winner.SetValue("first")
				}
				fmt.Printf("tick=%d time=%s periodic.ticks=%d trigger.remaining=%d\n",
					tick, k.Time(), periodic.TickCount(), trig.Remaining())
			}
			return nil
		},
	}
}
