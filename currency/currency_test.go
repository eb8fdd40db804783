// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"testing"

	"github.com/bitmark-inc/landd/currency"
)

func TestFromByteString(t *testing.T) {

	tests := []struct {
		in       string
		expected currency.Unit
	}{
		{"0", 0},
		{"0.00000001", 1},
		{"1", 100000000},
		{"1.5", 150000000},
		{"0.1", 10000000},
		{"21.00000001", 2100000001},
		{"0.123456789", 12345678}, // truncated after 8 places
		{"1,000", 100000000000},   // separators ignored
	}

	for i, item := range tests {
		actual := currency.FromByteString([]byte(item.in))
		if actual != item.expected {
			t.Errorf("%d: FromByteString(%q) -> %d  expected: %d", i, item.in, actual, item.expected)
		}
	}
}

func TestUnitString(t *testing.T) {

	tests := []struct {
		in       currency.Unit
		expected string
	}{
		{0, "0.00000000"},
		{1, "0.00000001"},
		{currency.OneCoin, "1.00000000"},
		{2100000001, "21.00000001"},
	}

	for i, item := range tests {
		if s := item.in.String(); s != item.expected {
			t.Errorf("%d: String(%d) -> %q  expected: %q", i, uint64(item.in), s, item.expected)
		}
	}
}
