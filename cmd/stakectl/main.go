package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/castle-finance/port-staking-instructions/cmd/stakectl/build"
	"github.com/castle-finance/port-staking-instructions/cmd/stakectl/decode"
	"github.com/castle-finance/port-staking-instructions/cmd/stakectl/fetch"
)

var cmd = cobra.Command{
	Use:   "stakectl",
	Short: "Inspect and construct staking program instructions and accounts",
}

func init() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		&build.Cmd,
		&decode.Cmd,
		&fetch.Cmd,
	)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	cobra.CheckErr(cmd.ExecuteContext(ctx))
}
