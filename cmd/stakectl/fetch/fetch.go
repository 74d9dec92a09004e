// Package fetch implements the stakectl commands that pull staking accounts
// from a Solana RPC node and decode them.
package fetch

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/castle-finance/port-staking-instructions/pkg/rpcclient"
)

var Cmd = cobra.Command{
	Use:   "fetch",
	Short: "Fetch and decode staking accounts from an RPC node",
}

var (
	poolCmd = cobra.Command{
		Use:   "pool <address>",
		Short: "Fetch a staking pool account",
		Args:  cobra.ExactArgs(1),
		Run:   runPool,
	}

	stakeAccountCmd = cobra.Command{
		Use:   "stake-account <address>",
		Short: "Fetch a stake account",
		Args:  cobra.ExactArgs(1),
		Run:   runStakeAccount,
	}

	rpcURL string
)

func init() {
	Cmd.PersistentFlags().StringVarP(&rpcURL, "url", "u", rpc.MainNetBeta_RPC, "RPC endpoint")

	Cmd.AddCommand(
		&poolCmd,
		&stakeAccountCmd,
	)
}

func parseAddress(arg string) solana.PublicKey {
	pk, err := solana.PublicKeyFromBase58(arg)
	if err != nil {
		klog.Exitf("invalid address %q: %s", arg, err)
	}
	return pk
}

func runPool(c *cobra.Command, args []string) {
	client := rpcclient.NewRpcClient(rpcURL)

	pool, err := client.GetStakingPool(c.Context(), parseAddress(args[0]))
	if err != nil {
		klog.Exitf("failed to fetch staking pool: %s", err)
	}

	fmt.Printf("version:                    %d (initialized: %t)\n", pool.Version, pool.IsInitialized())
	fmt.Printf("owner_authority:            %s\n", pool.OwnerAuthority)
	fmt.Printf("admin_authority:            %s\n", pool.AdminAuthority)
	fmt.Printf("reward_token_pool:          %s\n", pool.RewardTokenPool)
	fmt.Printf("last_update:                %d\n", pool.LastUpdate)
	fmt.Printf("end_time:                   %d\n", pool.EndTime)
	fmt.Printf("duration:                   %d\n", pool.Duration)
	fmt.Printf("earliest_reward_claim_time: %d\n", pool.EarliestRewardClaimTime)
	fmt.Printf("rate_per_slot:              %s\n", pool.RatePerSlot)
	fmt.Printf("cumulative_rate:            %s\n", pool.CumulativeRate)
	fmt.Printf("pool_size:                  %d\n", pool.PoolSize)
	fmt.Printf("bump_seed:                  %d\n", pool.BumpSeedStakingProgram)
}

func runStakeAccount(c *cobra.Command, args []string) {
	client := rpcclient.NewRpcClient(rpcURL)

	acct, err := client.GetStakeAccount(c.Context(), parseAddress(args[0]))
	if err != nil {
		klog.Exitf("failed to fetch stake account: %s", err)
	}

	fmt.Printf("version:               %d (initialized: %t)\n", acct.Version, acct.IsInitialized())
	fmt.Printf("start_rate:            %s\n", acct.StartRate)
	fmt.Printf("owner:                 %s\n", acct.Owner)
	fmt.Printf("pool_pubkey:           %s\n", acct.PoolPubkey)
	fmt.Printf("deposited_amount:      %d\n", acct.DepositedAmount)
	fmt.Printf("unclaimed_reward_wads: %s\n", acct.UnclaimedRewardWads)
}
