// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package updates

import (
	"io"
	"math/big"

	"github.com/Fantom-foundation/Mockchain/go/ledger"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// EncodeRLP implements rlp.Encoder.
func (u *BlockchainUpdates) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, rlpUpdates{
		World:    u.Origin.World,
		Sequence: u.Origin.Sequence,
		Accounts: toRlpAccounts(u.Accounts),
	})
}

// DecodeRLP implements rlp.Decoder.
func (u *BlockchainUpdates) DecodeRLP(s *rlp.Stream) error {
	var dec rlpUpdates
	if err := s.Decode(&dec); err != nil {
		return err
	}
	u.Origin = Origin{World: dec.World, Sequence: dec.Sequence}
	u.Accounts = make([]AccountUpdate, 0, len(dec.Accounts))
	for _, account := range dec.Accounts {
		update := AccountUpdate{
			Address:        account.Address,
			Create:         account.Create,
			NativeDelta:    account.Native.toBig(),
			NonceIncrement: account.NonceIncrement,
		}
		for _, token := range account.Tokens {
			update.TokenDeltas = append(update.TokenDeltas, TokenDelta{
				Key:   ledger.TokenKey{Token: ledger.TokenIdentifier(token.Token), Nonce: token.Nonce},
				Delta: token.Delta.toBig(),
			})
		}
		update.StorageWrites = append(update.StorageWrites, account.Storage...)
		u.Accounts = append(u.Accounts, update)
	}
	return nil
}

// Encode returns the RLP encoding of the updates.
func Encode(u *BlockchainUpdates) ([]byte, error) {
	return rlp.EncodeToBytes(u)
}

// Decode restores updates from their RLP encoding.
func Decode(data []byte) (*BlockchainUpdates, error) {
	res := new(BlockchainUpdates)
	if err := rlp.DecodeBytes(data, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Digest returns the keccak256 hash of the RLP encoded account effects. The
// origin stamp is not covered, so equal effects have equal digests.
func (u *BlockchainUpdates) Digest() (ledger.Hash, error) {
	data, err := rlp.EncodeToBytes(toRlpAccounts(u.Accounts))
	if err != nil {
		return ledger.Hash{}, err
	}
	return ledger.Hash(crypto.Keccak256Hash(data)), nil
}

type rlpUpdates struct {
	World    uint64
	Sequence uint64
	Accounts []rlpAccountUpdate
}

type rlpAccountUpdate struct {
	Address        ledger.Address
	Create         bool
	Native         rlpDelta
	Tokens         []rlpTokenDelta
	Storage        []StorageWrite
	NonceIncrement uint64
}

type rlpTokenDelta struct {
	Token string
	Nonce uint64
	Delta rlpDelta
}

// rlpDelta encodes a signed integer; RLP only supports non-negative ones.
type rlpDelta struct {
	Negative  bool
	Magnitude *big.Int
}

func newRlpDelta(v *big.Int) rlpDelta {
	v = ledger.CloneAmount(v)
	return rlpDelta{Negative: v.Sign() < 0, Magnitude: v.Abs(v)}
}

func (d rlpDelta) toBig() *big.Int {
	res := ledger.CloneAmount(d.Magnitude)
	if d.Negative {
		res.Neg(res)
	}
	return res
}

func toRlpAccounts(accounts []AccountUpdate) []rlpAccountUpdate {
	res := make([]rlpAccountUpdate, 0, len(accounts))
	for _, account := range accounts {
		enc := rlpAccountUpdate{
			Address:        account.Address,
			Create:         account.Create,
			Native:         newRlpDelta(account.NativeDelta),
			Tokens:         []rlpTokenDelta{},
			Storage:        []StorageWrite{},
			NonceIncrement: account.NonceIncrement,
		}
		for _, token := range account.TokenDeltas {
			enc.Tokens = append(enc.Tokens, rlpTokenDelta{
				Token: string(token.Key.Token),
				Nonce: token.Key.Nonce,
				Delta: newRlpDelta(token.Delta),
			})
		}
		enc.Storage = append(enc.Storage, account.StorageWrites...)
		res = append(res, enc)
	}
	return res
}
