// Package build implements the stakectl commands that construct staking
// program instructions.
package build

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/castle-finance/port-staking-instructions/pkg/staking"
)

var Cmd = cobra.Command{
	Use:   "build",
	Short: "Construct staking program instructions",
}

var (
	initPoolCmd = cobra.Command{
		Use:   "init-pool",
		Short: "Build an InitStakingPool instruction from a YAML parameter file",
		Run:   runInitPool,
	}

	createStakeAccountCmd = cobra.Command{
		Use:   "create-stake-account",
		Short: "Build a CreateStakeAccount instruction",
		Run:   runCreateStakeAccount,
	}

	depositCmd = cobra.Command{
		Use:   "deposit",
		Short: "Build a Deposit instruction",
		Run:   runDeposit,
	}

	withdrawCmd = cobra.Command{
		Use:   "withdraw",
		Short: "Build a Withdraw instruction",
		Run:   runWithdraw,
	}

	claimRewardCmd = cobra.Command{
		Use:   "claim-reward",
		Short: "Build a ClaimReward instruction",
		Run:   runClaimReward,
	}

	paramsPath        string
	programID         string
	amount            uint64
	authority         string
	stakeAccount      string
	stakingPool       string
	stakeAccountOwner string
	rewardTokenPool   string
	rewardDestination string
	subRewardPool     string
	subRewardDest     string
)

func init() {
	initPoolCmd.Flags().StringVarP(&paramsPath, "params", "p", "", "Path to YAML parameter file")

	for _, leaf := range []*cobra.Command{&createStakeAccountCmd, &depositCmd, &withdrawCmd, &claimRewardCmd} {
		leaf.Flags().StringVar(&programID, "program-id", staking.ProgramID.String(), "Staking program id")
		leaf.Flags().StringVar(&stakeAccount, "stake-account", "", "Stake account address")
		leaf.Flags().StringVar(&stakingPool, "staking-pool", "", "Staking pool address")
	}

	createStakeAccountCmd.Flags().StringVar(&stakeAccountOwner, "owner", "", "Stake account owner")

	depositCmd.Flags().Uint64Var(&amount, "amount", 0, "Token amount")
	depositCmd.Flags().StringVar(&authority, "authority", "", "Deposit authority")
	withdrawCmd.Flags().Uint64Var(&amount, "amount", 0, "Token amount")
	withdrawCmd.Flags().StringVar(&authority, "authority", "", "Withdraw authority")

	claimRewardCmd.Flags().StringVar(&stakeAccountOwner, "owner", "", "Stake account owner")
	claimRewardCmd.Flags().StringVar(&rewardTokenPool, "reward-token-pool", "", "Reward token pool address")
	claimRewardCmd.Flags().StringVar(&rewardDestination, "reward-destination", "", "Reward destination token account")
	claimRewardCmd.Flags().StringVar(&subRewardPool, "sub-reward-pool", "", "Sub reward token pool address")
	claimRewardCmd.Flags().StringVar(&subRewardDest, "sub-reward-destination", "", "Sub reward destination token account")

	Cmd.AddCommand(
		&initPoolCmd,
		&createStakeAccountCmd,
		&depositCmd,
		&withdrawCmd,
		&claimRewardCmd,
	)
}

// initPoolParams is the YAML shape consumed by `build init-pool`.
type initPoolParams struct {
	ProgramID                    string `yaml:"program_id"`
	Supply                       uint64 `yaml:"supply"`
	Duration                     uint64 `yaml:"duration"`
	EarliestRewardClaimTime      uint64 `yaml:"earliest_reward_claim_time"`
	TransferRewardTokenAuthority string `yaml:"transfer_reward_token_authority"`
	RewardTokenSupply            string `yaml:"reward_token_supply"`
	RewardTokenPool              string `yaml:"reward_token_pool"`
	StakingPool                  string `yaml:"staking_pool"`
	RewardTokenMint              string `yaml:"reward_token_mint"`
	StakingPoolOwnerDerived      string `yaml:"staking_pool_owner_derived"`
	AdminAuthority               string `yaml:"admin_authority"`
}

func mustKey(name string, value string) solana.PublicKey {
	if value == "" {
		klog.Exitf("missing required key %s", name)
	}
	pk, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		klog.Exitf("invalid %s %q: %s", name, value, err)
	}
	return pk
}

func printInstruction(instr solana.Instruction) {
	data, err := instr.Data()
	if err != nil {
		klog.Exitf("failed to serialize instruction data: %s", err)
	}

	fmt.Printf("program: %s\n", instr.ProgramID())
	fmt.Printf("data:    %s\n", base64.StdEncoding.EncodeToString(data))
	fmt.Printf("accounts:\n")
	for idx, meta := range instr.Accounts() {
		flags := ""
		if meta.IsSigner {
			flags += " [signer]"
		}
		if meta.IsWritable {
			flags += " [writable]"
		}
		fmt.Printf("  %2d. %s%s\n", idx, meta.PublicKey, flags)
	}
}

func runInitPool(c *cobra.Command, args []string) {
	if paramsPath == "" {
		klog.Exitf("must specify a YAML parameter file with --params")
	}

	raw, err := os.ReadFile(paramsPath)
	if err != nil {
		klog.Exitf("failed to read parameter file: %s", err)
	}

	var params initPoolParams
	if err := yaml.Unmarshal(raw, &params); err != nil {
		klog.Exitf("failed to parse parameter file: %s", err)
	}

	prog := staking.ProgramID
	if params.ProgramID != "" {
		prog = mustKey("program_id", params.ProgramID)
	}

	instr, err := staking.NewInitStakingPoolInstruction(
		prog,
		params.Supply,
		params.Duration,
		params.EarliestRewardClaimTime,
		mustKey("transfer_reward_token_authority", params.TransferRewardTokenAuthority),
		mustKey("reward_token_supply", params.RewardTokenSupply),
		mustKey("reward_token_pool", params.RewardTokenPool),
		mustKey("staking_pool", params.StakingPool),
		mustKey("reward_token_mint", params.RewardTokenMint),
		mustKey("staking_pool_owner_derived", params.StakingPoolOwnerDerived),
		mustKey("admin_authority", params.AdminAuthority),
	)
	if err != nil {
		klog.Exitf("failed to build instruction: %s", err)
	}

	printInstruction(instr)
}

func runCreateStakeAccount(c *cobra.Command, args []string) {
	instr := staking.NewCreateStakeAccountInstruction(
		mustKey("program-id", programID),
		mustKey("stake-account", stakeAccount),
		mustKey("staking-pool", stakingPool),
		mustKey("owner", stakeAccountOwner),
	)
	printInstruction(instr)
}

func runDeposit(c *cobra.Command, args []string) {
	instr := staking.NewDepositInstruction(
		mustKey("program-id", programID),
		amount,
		mustKey("authority", authority),
		mustKey("stake-account", stakeAccount),
		mustKey("staking-pool", stakingPool),
	)
	printInstruction(instr)
}

func runWithdraw(c *cobra.Command, args []string) {
	instr := staking.NewWithdrawInstruction(
		mustKey("program-id", programID),
		amount,
		mustKey("authority", authority),
		mustKey("stake-account", stakeAccount),
		mustKey("staking-pool", stakingPool),
	)
	printInstruction(instr)
}

func runClaimReward(c *cobra.Command, args []string) {
	instr, err := staking.NewClaimRewardInstruction(
		mustKey("program-id", programID),
		mustKey("owner", stakeAccountOwner),
		mustKey("stake-account", stakeAccount),
		mustKey("staking-pool", stakingPool),
		mustKey("reward-token-pool", rewardTokenPool),
		mustKey("reward-destination", rewardDestination),
		mustKey("sub-reward-pool", subRewardPool),
		mustKey("sub-reward-destination", subRewardDest),
	)
	if err != nil {
		klog.Exitf("failed to build instruction: %s", err)
	}
	printInstruction(instr)
}
