// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFixed_StandsStill(t *testing.T) {
	instant := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	clk := Fixed(instant)

	if !clk.Now().Equal(instant) {
		t.Errorf("Fixed clock Now() = %v, want %v", clk.Now(), instant)
	}
	if !clk.Now().Equal(clk.Now()) {
		t.Error("Fixed clock should return the same instant on every call")
	}
}

func TestReal_Advances(t *testing.T) {
	clk := Real()
	before := clk.Now()
	time.Sleep(time.Millisecond)
	after := clk.Now()

	if !after.After(before) {
		t.Errorf("Real clock did not advance: before=%v after=%v", before, after)
	}
}
