// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared test helpers.

# Fake Chain

NewFakeChain returns an in-memory contract-plus-node that applies the
real voting rules (owner-gated registration, unique candidates, one
vote per address) and reports reverts the way a node does:

	chain := testutil.NewFakeChain()
	gw := gateway.NewWithBackend(chain, chain, testutil.ContractAddr)

FailCalls and FailTransacts simulate provider outages; RevertInReceipt
switches reverts from submit-time errors to mined-but-failed receipts.

# Fake Connector

FakeConnector stands in for the wallet in handler tests:

	conn := &testutil.FakeConnector{Account: testutil.OwnerAddress}
	mux := router.NewRouter(conn, gw, state.NewStore())

# Request Helpers

	req := testutil.MakeRequest("POST", "/votes", body, nil)
	testutil.AssertStatus(t, w, http.StatusCreated)
	testutil.AssertJSON(t, w, &resp)
*/
package testutil
