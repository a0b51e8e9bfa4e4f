// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// trunneldump parses a hex-encoded buffer against one of this module's
// message types and prints the result, for poking at wire bytes from the
// command line without writing a throwaway test.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rl1987/trunnel/messages"
)

var (
	msgType = flag.String("type", "", "message type to parse the input as (required); one of: "+strings.Join(messageTypeNames(), ", "))
	input   = flag.String("hex", "", "hex-encoded input buffer; if empty, read hex from stdin")
)

func messageTypeNames() []string {
	return []string{
		"IntegerRecord", "StringsRecord", "NestedRecord", "RestrictedTriple",
		"UnionNoLen", "UnionWithLen", "ToEndArray", "ExactFrame", "PositionRecord",
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: trunneldump -type TYPE [-hex HEXBYTES]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *msgType == "" {
		flag.Usage()
		os.Exit(2)
	}

	buf, err := readInput(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "trunneldump:", err)
		os.Exit(1)
	}

	dump, n, err := dispatch(*msgType, buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trunneldump: parse error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("consumed %d/%d bytes\n%s\n", n, len(buf), dump)
}

func readInput(flagVal string) ([]byte, error) {
	if flagVal != "" {
		return hex.DecodeString(strip(flagVal))
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return hex.DecodeString(strip(string(data)))
}

func strip(s string) string {
	return strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "").Replace(s)
}

// dispatch parses buf as the named message type and renders a one-line
// summary of its fields. It deliberately does not use reflection: every
// message type in this module has a distinct accessor set, and a type
// switch keeps the tool's output format under the author's control
// rather than generic and unreadable.
func dispatch(typeName string, buf []byte) (dump string, consumed int, err error) {
	switch typeName {
	case "IntegerRecord":
		m, n, err := messages.ParseIntegerRecord(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("IntegerRecord{i8:%d i16:%d i32:%d i64:%d}", m.I8(), m.I16(), m.I32(), m.I64()), n, nil

	case "StringsRecord":
		m, n, err := messages.ParseStringsRecord(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("StringsRecord{fixed:%x nt:%q}", m.Fixed(), m.Nt()), n, nil

	case "NestedRecord":
		m, n, err := messages.ParseNestedRecord(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("NestedRecord{first.i8:%d second.i8:%d strs.nt:%q triple:(%d,%d,%d)}",
			m.First().I8(), m.Second().I8(), m.Strs().Nt(), m.Triple().I1(), m.Triple().I2(), m.Triple().I3()), n, nil

	case "RestrictedTriple":
		m, n, err := messages.ParseRestrictedTriple(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("RestrictedTriple{i1:%d i2:%d i3:%d}", m.I1(), m.I2(), m.I3()), n, nil

	case "UnionNoLen":
		m, n, err := messages.ParseUnionNoLen(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("UnionNoLen{tag:%#x body:%d}", m.Tag(), m.Body()), n, nil

	case "UnionWithLen":
		m, n, err := messages.ParseUnionWithLen(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("UnionWithLen{tag:%#x body:%d raw:%x trailer:%q}", m.Tag(), m.Body(), m.Raw(), m.Trailer()), n, nil

	case "ToEndArray":
		m, n, err := messages.ParseToEndArray(buf)
		if err != nil {
			return "", 0, err
		}
		elems := make([]uint32, m.Len())
		for i := range elems {
			elems[i] = m.Get(i)
		}
		return fmt.Sprintf("ToEndArray%v", elems), n, nil

	case "ExactFrame":
		m, n, err := messages.ParseExactFrame(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("ExactFrame{inner.i8:%d}", m.Inner().I8()), n, nil

	case "PositionRecord":
		m, n, err := messages.ParsePositionRecord(buf)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("PositionRecord{s1:%q pos1:%d s2:%q pos2:%d x:%d}",
			m.S1(), m.Pos1(), m.S2(), m.Pos2(), m.X()), n, nil

	default:
		return "", 0, fmt.Errorf("unknown -type %q (want one of: %s)", typeName, strings.Join(messageTypeNames(), ", "))
	}
}
