// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/retrosystems/mos6502/logger"
)

func TestLogDeduplicatesRepeats(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "halted")
	logger.Log(logger.Allow, "test", "halted")
	logger.Log(logger.Allow, "test", "halted")

	var b strings.Builder
	logger.Write(&b)

	if got := strings.Count(b.String(), "halted"); got != 1 {
		t.Fatalf("expected the repeated entry to collapse to a single line, got %d occurrences in %q", got, b.String())
	}
	if !strings.Contains(b.String(), "repeat x3") {
		t.Fatalf("expected repeat count of 3, got %q", b.String())
	}
}

func TestLogfFormats(t *testing.T) {
	logger.Clear()
	logger.Logf(logger.Allow, "cpu", "opcode %#02x unimplemented", 0x02)

	var b strings.Builder
	logger.Write(&b)

	if !strings.Contains(b.String(), "0x02") {
		t.Fatalf("expected formatted detail, got %q", b.String())
	}
}

func TestTailReturnsOnlyRequestedCount(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "a", "1")
	logger.Log(logger.Allow, "b", "2")
	logger.Log(logger.Allow, "c", "3")

	var b strings.Builder
	logger.Tail(&b, 2)

	if strings.Contains(b.String(), "a: 1") {
		t.Fatalf("tail(2) should not include the oldest entry, got %q", b.String())
	}
	if !strings.Contains(b.String(), "c: 3") {
		t.Fatalf("tail(2) should include the newest entry, got %q", b.String())
	}
}

func TestSetEchoMirrorsToWriter(t *testing.T) {
	logger.Clear()
	var echoed strings.Builder
	logger.SetEcho(&echoed)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "cpu", "jam")

	if !strings.Contains(echoed.String(), "jam") {
		t.Fatalf("expected echoed entry, got %q", echoed.String())
	}
}
