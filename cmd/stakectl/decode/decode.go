// Package decode implements the stakectl commands that decode instruction
// data and raw account images.
package decode

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/castle-finance/port-staking-instructions/pkg/staking"
)

var Cmd = cobra.Command{
	Use:   "decode",
	Short: "Decode staking program instructions and account data",
}

var (
	instructionCmd = cobra.Command{
		Use:   "instruction <data>",
		Short: "Decode instruction data",
		Args:  cobra.ExactArgs(1),
		Run:   runInstruction,
	}

	poolCmd = cobra.Command{
		Use:   "pool <file>",
		Short: "Decode a staking pool account image (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		Run:   runPool,
	}

	stakeAccountCmd = cobra.Command{
		Use:   "stake-account <file>",
		Short: "Decode a stake account image (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		Run:   runStakeAccount,
	}

	encoding string
)

func init() {
	instructionCmd.Flags().StringVarP(&encoding, "encoding", "e", "base64", "Instruction data encoding: base58, base64 or hex")

	Cmd.AddCommand(
		&instructionCmd,
		&poolCmd,
		&stakeAccountCmd,
	)
}

func decodeArg(arg string) ([]byte, error) {
	switch encoding {
	case "base58":
		return base58.Decode(arg)
	case "base64":
		return base64.StdEncoding.DecodeString(arg)
	case "hex":
		return hex.DecodeString(arg)
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}

func readAccountImage(arg string) []byte {
	var data []byte
	var err error
	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		klog.Exitf("failed to read account image: %s", err)
	}
	return data
}

func runInstruction(c *cobra.Command, args []string) {
	data, err := decodeArg(args[0])
	if err != nil {
		klog.Exitf("failed to decode %s argument: %s", encoding, err)
	}

	instr, err := staking.UnpackInstruction(data)
	if err != nil {
		klog.Exitf("failed to unpack instruction: %s", err)
	}

	PrintInstruction(os.Stdout, instr)
}

func runPool(c *cobra.Command, args []string) {
	pool, err := staking.UnpackStakingPool(readAccountImage(args[0]))
	if err != nil {
		klog.Exitf("failed to unpack staking pool: %s", err)
	}

	fmt.Printf("StakingPool\n")
	fmt.Printf("  version:                    %d (initialized: %t)\n", pool.Version, pool.IsInitialized())
	fmt.Printf("  owner_authority:            %s\n", pool.OwnerAuthority)
	fmt.Printf("  admin_authority:            %s\n", pool.AdminAuthority)
	fmt.Printf("  reward_token_pool:          %s\n", pool.RewardTokenPool)
	fmt.Printf("  last_update:                %d\n", pool.LastUpdate)
	fmt.Printf("  end_time:                   %d\n", pool.EndTime)
	fmt.Printf("  duration:                   %d\n", pool.Duration)
	fmt.Printf("  earliest_reward_claim_time: %d\n", pool.EarliestRewardClaimTime)
	fmt.Printf("  rate_per_slot:              %s\n", pool.RatePerSlot)
	fmt.Printf("  cumulative_rate:            %s\n", pool.CumulativeRate)
	fmt.Printf("  pool_size:                  %d\n", pool.PoolSize)
	fmt.Printf("  bump_seed:                  %d\n", pool.BumpSeedStakingProgram)
}

func runStakeAccount(c *cobra.Command, args []string) {
	acct, err := staking.UnpackStakeAccount(readAccountImage(args[0]))
	if err != nil {
		klog.Exitf("failed to unpack stake account: %s", err)
	}

	fmt.Printf("StakeAccount\n")
	fmt.Printf("  version:               %d (initialized: %t)\n", acct.Version, acct.IsInitialized())
	fmt.Printf("  start_rate:            %s\n", acct.StartRate)
	fmt.Printf("  owner:                 %s\n", acct.Owner)
	fmt.Printf("  pool_pubkey:           %s\n", acct.PoolPubkey)
	fmt.Printf("  deposited_amount:      %d\n", acct.DepositedAmount)
	fmt.Printf("  unclaimed_reward_wads: %s\n", acct.UnclaimedRewardWads)
}

// PrintInstruction writes a human-readable rendering of a decoded
// instruction.
func PrintInstruction(w io.Writer, instr staking.StakingInstruction) {
	switch instr := instr.(type) {
	case *staking.InstrInitStakingPool:
		fmt.Fprintf(w, "InitStakingPool\n")
		fmt.Fprintf(w, "  supply:                     %d\n", instr.Supply)
		fmt.Fprintf(w, "  duration:                   %d\n", instr.Duration)
		fmt.Fprintf(w, "  earliest_reward_claim_time: %d\n", instr.EarliestRewardClaimTime)
		fmt.Fprintf(w, "  bump_seed:                  %d\n", instr.BumpSeedStakingProgram)
		fmt.Fprintf(w, "  pool_owner_authority:       %s\n", instr.PoolOwnerAuthority)
		fmt.Fprintf(w, "  admin_authority:            %s\n", instr.AdminAuthority)
	case *staking.InstrCreateStakeAccount:
		fmt.Fprintf(w, "CreateStakeAccount\n")
	case *staking.InstrDeposit:
		fmt.Fprintf(w, "Deposit\n")
		fmt.Fprintf(w, "  amount: %d\n", instr.Amount)
	case *staking.InstrWithdraw:
		fmt.Fprintf(w, "Withdraw\n")
		fmt.Fprintf(w, "  amount: %d\n", instr.Amount)
	case *staking.InstrClaimReward:
		fmt.Fprintf(w, "ClaimReward\n")
	}
}
