// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cyclopcam/logs"

	"github.com/loopdrills/loopdrills/seqs"
)

func TestLargest(t *testing.T) {
	out, err := runDrill("", "largest")
	wantExit(t, err, 0)
	wantOutput(t, out, "88\n")

	out, err = runDrill("", "largest", "--values", "3, 9,1")
	wantExit(t, err, 0)
	wantOutput(t, out, "9\n")
}

func TestDuplicates(t *testing.T) {
	out, err := runDrill("", "duplicates")
	wantExit(t, err, 0)
	wantOutput(t, out, "5\n")

	out, err = runDrill("", "duplicates", "--values", "1,2,3")
	wantExit(t, err, 0)
	wantOutput(t, out, "No duplicate in the provided list\n")
}

func TestFrequent(t *testing.T) {
	out, err := runDrill("", "frequent")
	wantExit(t, err, 0)
	wantOutput(t, out, "apple\n")

	out, err = runDrill("", "frequent", "--values", "b,a,a,b")
	wantExit(t, err, 0)
	wantOutput(t, out, "b\n")
}

func TestRanges(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"evens", "-n", "8"}, "2\n4\n6\n8\n"},
		{[]string{"countdown", "-n", "3"}, "3\n2\n1\n"},
		{[]string{"chars", "-s", "abc"}, "a\nb\nc\n"},
		{[]string{"sum"}, "5050\n"},
		{[]string{"sum", "-n", "4"}, "10\n"},
		{[]string{"greater", "-t", "5"}, "7\n9\n"},
		{[]string{"except", "-s", "3", "-n", "5"}, "1\n2\n4\n5\n"},
	} {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runDrill("", tt.args...)
			wantExit(t, err, 0)
			wantOutput(t, out, tt.want)
		})
	}
}

func TestTable(t *testing.T) {
	out, err := runDrill("", "table")
	wantExit(t, err, 0)
	var want strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&want, "5 x %d = %d\n", i, 5*i)
	}
	wantOutput(t, out, want.String())
}

func TestPassword(t *testing.T) {
	out, err := runDrill("\n\nhunter2\n", "password")
	wantExit(t, err, 0)
	wantOutput(t, out, `Enter new password: Password cannot be empty! Try again.
Enter new password: Password cannot be empty! Try again.
Enter new password: Password accepted (7 characters)
`)

	// No trailing newline on the last line.
	out, err = runDrill("s3cret", "password")
	wantExit(t, err, 0)
	wantOutput(t, out, "Enter new password: Password accepted (6 characters)\n")
}

func TestPasswordEOF(t *testing.T) {
	out, err := runDrill("\n", "password")
	wantExit(t, err, 1)
	wantOutput(t, out, `Enter new password: Password cannot be empty! Try again.
Enter new password: password: input ended before a non-empty answer: unexpected EOF
`)
}

func TestBadValues(t *testing.T) {
	out, err := runDrill("", "largest", "--values", "1,x")
	wantExit(t, err, 2)
	wantOutput(t, out, "largest: --values: \"x\" is not an integer\n")
}

func TestNoDrill(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := main1([]string{"loopdrills"}, strings.NewReader(""), &stdout, &stderr)
	wantExit(t, err, 2)
	if stdout.Len() != 0 {
		t.Errorf("want no output, got %q", stdout.String())
	}
	if stderr.Len() == 0 {
		t.Errorf("want usage on stderr")
	}
}

func TestJSON(t *testing.T) {
	out, err := runDrill("", "--json", "largest")
	wantExit(t, err, 0)
	wantOutput(t, out, `{"drill":"largest","values":["88"]}`+"\n")

	out, err = runDrill("", "--json", "duplicates", "--values", "4,5")
	wantExit(t, err, 0)
	wantOutput(t, out, `{"drill":"duplicates","message":"No duplicate in the provided list"}`+"\n")

	out, err = runDrill("", "--json", "largest", "--values", "z")
	wantExit(t, err, 2)
	wantOutput(t, out, `{"drill":"largest","error":"--values: \"z\" is not an integer"}`+"\n")
}

func TestJSONPassword(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := main1([]string{"loopdrills", "--json", "password"}, strings.NewReader("\npw\n"), &stdout, &stderr)
	wantExit(t, err, 0)
	wantOutput(t, stdout.String(), `{"drill":"password","message":"Password accepted (2 characters)"}`+"\n")
	wantOutput(t, stderr.String(), "Enter new password: Password cannot be empty! Try again.\nEnter new password: ")
}

type testRenderer struct {
	buf bytes.Buffer
}

func (r *testRenderer) Values(drill string, values []string) {
	fmt.Fprintf(&r.buf, "%s:[%s]\n", drill, strings.Join(values, " "))
}

func (r *testRenderer) Message(drill string, msg string) {
	fmt.Fprintf(&r.buf, "%s: %s\n", drill, msg)
}

func (r *testRenderer) Error(drill string, err error) {
	fmt.Fprintf(&r.buf, "error: %s: %s\n", drill, err)
}

func (r *testRenderer) Flush() error { return nil }

func TestDrillEnv(t *testing.T) {
	inv, _, err := parseArgs([]string{"loopdrills", "frequent", "--values", "x,y,y"})
	if err != nil {
		t.Fatal(err)
	}
	r := new(testRenderer)
	log := logs.NewTestingLog(t)
	env := &drillEnv{r: r, prompt: NewPrompter(strings.NewReader(""), new(bytes.Buffer), log), log: log}
	if err := env.run(inv); err != nil {
		t.Fatal(err)
	}
	wantOutput(t, r.buf.String(), "frequent:[y]\n")
}

func TestDrillEnvError(t *testing.T) {
	r := new(testRenderer)
	log := logs.NewTestingLog(t)
	env := &drillEnv{r: r, log: log}
	d := &drill{name: "frequent", run: func(env *drillEnv) error {
		_, err := seqs.MostFrequent([]string{})
		return err
	}}
	err := env.run(&invocation{drill: d})
	if !errors.Is(err, seqs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	wantOutput(t, r.buf.String(), "error: frequent: invalid argument: most-frequent-element finder requires a non-empty sequence\n")
}

func TestVerbose(t *testing.T) {
	// Log lines may go anywhere, but the result must still be printed.
	out, err := runDrill("", "-v", "sum", "-n", "3")
	wantExit(t, err, 0)
	if !strings.HasSuffix(out, "6\n") {
		t.Errorf("want output ending in 6, got %q", out)
	}
}

// runDrill runs the loopdrills command with args and stdin, and returns what
// it wrote to stdout and its exit status.
func runDrill(stdin string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	err := main1(append([]string{"loopdrills"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func wantExit(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil && status == 0 {
		return
	}
	switch err := err.(type) {
	case ErrExit:
		if int(err) != status {
			t.Errorf("want exit status %d, got %d", status, int(err))
		}
	default:
		t.Errorf("want exit status %d, got error %v", status, err)
	}
}

func wantOutput(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	t.Errorf("want:\n%sgot:\n%s", want, got)
}
