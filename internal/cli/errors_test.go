package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitUsage, ExitCode(&ParseError{Kind: MissingArgument, Args: []string{"--input"}}))
	require.Equal(t, ExitUsage, ExitCode(fmt.Errorf("wrapped: %w", &ParseError{Kind: UnknownArgument})))
	require.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}

func TestParseErrorMessages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "missing lists every option",
			err:  &ParseError{Kind: MissingArgument, Args: []string{"--input", "--keywords"}},
			want: "required option(s) not provided: --input, --keywords",
		},
		{
			name: "invalid value with cause",
			err:  &ParseError{Kind: InvalidValue, Args: []string{"--start-page"}, Value: "abc", Err: errors.New("invalid syntax")},
			want: `invalid value "abc" for --start-page: invalid syntax`,
		},
		{
			name: "unknown positional",
			err:  &ParseError{Kind: UnknownArgument, Args: []string{"extra"}},
			want: `unexpected argument "extra"`,
		},
		{
			name: "unknown falls back to cause",
			err:  &ParseError{Kind: UnknownArgument, Err: errors.New("unknown flag: --bogus")},
			want: "unknown flag: --bogus",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("parse: %w", &ParseError{Kind: InvalidValue})
	require.True(t, IsKind(err, InvalidValue))
	require.False(t, IsKind(err, MissingArgument))
	require.False(t, IsKind(errors.New("plain"), InvalidValue))
	require.Equal(t, "UnknownArgument", UnknownArgument.String())
}
