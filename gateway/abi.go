// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// VotingABI is the fixed interface of the deployed voting contract:
// five callable entry points and two events. The contract itself is
// external; nothing here deploys or upgrades it.
const VotingABI = `[
	{"type":"function","name":"registerCandidate","stateMutability":"nonpayable","inputs":[{"name":"id","type":"bytes32"}],"outputs":[]},
	{"type":"function","name":"vote","stateMutability":"nonpayable","inputs":[{"name":"id","type":"bytes32"}],"outputs":[]},
	{"type":"function","name":"voteCountOf","stateMutability":"view","inputs":[{"name":"id","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"listCandidateIds","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32[]"}]},
	{"type":"function","name":"candidateCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"event","name":"CandidateRegistered","inputs":[{"name":"id","type":"bytes32","indexed":true}],"anonymous":false},
	{"type":"event","name":"VoteCast","inputs":[{"name":"voter","type":"address","indexed":true},{"name":"id","type":"bytes32","indexed":true}],"anonymous":false}
]`

// ParseABI parses the fixed contract interface.
func ParseABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(VotingABI))
}
