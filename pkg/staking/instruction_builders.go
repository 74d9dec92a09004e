package staking

import (
	"github.com/gagliardetto/solana-go"
)

// Builders for the program's instructions. Account orderings follow the
// on-chain processor's expectations exactly; getting them wrong aborts the
// whole invocation, so callers should prefer these over hand-rolled metas.

// NewInitStakingPoolInstruction builds the instruction that creates a staking
// pool. The bump seed is derived from the staking pool address and baked into
// the instruction data.
//
// Accounts:
//
//	0. `[signer]` transfer reward token authority
//	1. `[writable]` reward token supply
//	2. `[writable]` reward token pool, uninitialized
//	3. `[writable]` staking pool, uninitialized
//	4. `[]` reward token mint
//	5. `[]` staking program derived address that owns the reward token pool
//	6. `[]` rent sysvar
//	7. `[]` token program
func NewInitStakingPoolInstruction(
	programID solana.PublicKey,
	supply uint64,
	duration uint64,
	earliestRewardClaimTime uint64,
	transferRewardTokenAuthority solana.PublicKey,
	rewardTokenSupply solana.PublicKey,
	rewardTokenPool solana.PublicKey,
	stakingPool solana.PublicKey,
	rewardTokenMint solana.PublicKey,
	stakingPoolOwnerDerived solana.PublicKey,
	adminAuthority solana.PublicKey,
) (solana.Instruction, error) {
	stakingProgramDerived, bumpSeed, err := solana.FindProgramAddress(
		[][]byte{stakingPool.Bytes()},
		programID,
	)
	if err != nil {
		return nil, err
	}

	data := PackInstruction(&InstrInitStakingPool{
		Supply:                  supply,
		Duration:                duration,
		EarliestRewardClaimTime: earliestRewardClaimTime,
		BumpSeedStakingProgram:  bumpSeed,
		PoolOwnerAuthority:      stakingPoolOwnerDerived,
		AdminAuthority:          adminAuthority,
	})

	accounts := solana.AccountMetaSlice{
		solana.Meta(transferRewardTokenAuthority).SIGNER(),
		solana.Meta(rewardTokenSupply).WRITE(),
		solana.Meta(rewardTokenPool).WRITE(),
		solana.Meta(stakingPool).WRITE(),
		solana.Meta(rewardTokenMint),
		solana.Meta(stakingProgramDerived),
		solana.Meta(solana.SysVarRentPubkey),
		solana.Meta(solana.TokenProgramID),
	}

	return solana.NewInstruction(programID, accounts, data), nil
}

// NewCreateStakeAccountInstruction builds the instruction that creates a
// participant's stake account within a pool.
//
// Accounts:
//
//	0. `[writable]` stake account, uninitialized
//	1. `[]` staking pool
//	2. `[]` stake account owner
//	3. `[]` rent sysvar
func NewCreateStakeAccountInstruction(
	programID solana.PublicKey,
	stakeAccount solana.PublicKey,
	stakingPool solana.PublicKey,
	stakeAccountOwner solana.PublicKey,
) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.Meta(stakeAccount).WRITE(),
		solana.Meta(stakingPool),
		solana.Meta(stakeAccountOwner),
		solana.Meta(solana.SysVarRentPubkey),
	}

	return solana.NewInstruction(programID, accounts, PackInstruction(&InstrCreateStakeAccount{}))
}

// NewDepositInstruction builds a deposit into a stake account.
//
// Accounts:
//
//	0. `[signer]` authority
//	1. `[writable]` stake account
//	2. `[writable]` staking pool
//	3. `[]` clock sysvar
func NewDepositInstruction(
	programID solana.PublicKey,
	amount uint64,
	authority solana.PublicKey,
	stakeAccount solana.PublicKey,
	stakingPool solana.PublicKey,
) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.Meta(authority).SIGNER(),
		solana.Meta(stakeAccount).WRITE(),
		solana.Meta(stakingPool).WRITE(),
		solana.Meta(solana.SysVarClockPubkey),
	}

	return solana.NewInstruction(programID, accounts, PackInstruction(&InstrDeposit{Amount: amount}))
}

// NewWithdrawInstruction builds a withdrawal from a stake account. Same
// account list as deposit.
func NewWithdrawInstruction(
	programID solana.PublicKey,
	amount uint64,
	authority solana.PublicKey,
	stakeAccount solana.PublicKey,
	stakingPool solana.PublicKey,
) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.Meta(authority).SIGNER(),
		solana.Meta(stakeAccount).WRITE(),
		solana.Meta(stakingPool).WRITE(),
		solana.Meta(solana.SysVarClockPubkey),
	}

	return solana.NewInstruction(programID, accounts, PackInstruction(&InstrWithdraw{Amount: amount}))
}

// NewClaimRewardInstruction builds the instruction that pays out all
// unclaimed reward from a stake account.
//
// Accounts:
//
//	0. `[signer]` stake account owner
//	1. `[writable]` stake account
//	2. `[writable]` staking pool
//	3. `[writable]` reward token pool
//	4. `[writable]` reward destination
//	5. `[]` staking pool owner derived from the staking pool pubkey
//	6. `[]` clock sysvar
//	7. `[]` token program
//	8. `[writable]` sub reward pool
//	9. `[writable]` sub reward destination
func NewClaimRewardInstruction(
	programID solana.PublicKey,
	stakeAccountOwner solana.PublicKey,
	stakeAccount solana.PublicKey,
	stakingPool solana.PublicKey,
	rewardTokenPool solana.PublicKey,
	rewardDestination solana.PublicKey,
	subRewardPool solana.PublicKey,
	subRewardDest solana.PublicKey,
) (solana.Instruction, error) {
	stakingProgramDerived, _, err := solana.FindProgramAddress(
		[][]byte{stakingPool.Bytes()},
		programID,
	)
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(stakeAccountOwner).SIGNER(),
		solana.Meta(stakeAccount).WRITE(),
		solana.Meta(stakingPool).WRITE(),
		solana.Meta(rewardTokenPool).WRITE(),
		solana.Meta(rewardDestination).WRITE(),
		solana.Meta(stakingProgramDerived),
		solana.Meta(solana.SysVarClockPubkey),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(subRewardPool).WRITE(),
		solana.Meta(subRewardDest).WRITE(),
	}

	return solana.NewInstruction(programID, accounts, PackInstruction(&InstrClaimReward{})), nil
}
