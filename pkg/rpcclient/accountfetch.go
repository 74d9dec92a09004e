package rpcclient

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/castle-finance/port-staking-instructions/pkg/staking"
)

var ErrNoAccount = errors.New("ErrNoAccount")

// GetRawAccount fetches an account's data bytes at finalized commitment.
func (fetcher *RpcClient) GetRawAccount(ctx context.Context, pubkey solana.PublicKey) ([]byte, error) {
	result, err := fetcher.client.GetAccountInfoWithOpts(
		ctx,
		pubkey,
		&rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return nil, err
	}

	if result.Value == nil || result.Value.Data == nil {
		return nil, ErrNoAccount
	}

	return result.Value.Data.GetBinary(), nil
}

// GetStakingPool fetches and decodes a staking pool account.
func (fetcher *RpcClient) GetStakingPool(ctx context.Context, pubkey solana.PublicKey) (*staking.StakingPool, error) {
	data, err := fetcher.GetRawAccount(ctx, pubkey)
	if err != nil {
		return nil, err
	}
	return staking.UnpackStakingPool(data)
}

// GetStakeAccount fetches and decodes a stake account.
func (fetcher *RpcClient) GetStakeAccount(ctx context.Context, pubkey solana.PublicKey) (*staking.StakeAccount, error) {
	data, err := fetcher.GetRawAccount(ctx, pubkey)
	if err != nil {
		return nil, err
	}
	return staking.UnpackStakeAccount(data)
}
