package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Values creates validating flag values and remembers the first one that
// rejected its input. pflag does not wrap Set errors consistently across
// releases, so Classify consults the record instead of the error chain.
type Values struct {
	rejected *ParseError
}

// Uint returns a flag value storing a base-10 unsigned integer into p.
func (v *Values) Uint(p *uint, name string) pflag.Value {
	return &uintValue{p: p, name: name, owner: v}
}

// Choice returns a flag value that accepts only one of choices.
func (v *Values) Choice(p *string, name string, choices ...string) pflag.Value {
	return &choiceValue{p: p, name: name, choices: choices, owner: v}
}

func (v *Values) reject(name, value string, err error) error {
	pe := &ParseError{Kind: InvalidValue, Args: []string{"--" + name}, Value: value, Err: err}
	if v.rejected == nil {
		v.rejected = pe
	}
	return pe
}

// Classify converts an error produced while parsing flags into a ParseError.
func (v *Values) Classify(err error) error {
	if err == nil {
		return nil
	}
	if v.rejected != nil {
		return v.rejected
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	var notExist *pflag.NotExistError
	if errors.As(err, &notExist) {
		return &ParseError{Kind: UnknownArgument, Err: err}
	}
	return &ParseError{Kind: InvalidValue, Err: err}
}

// RequireFlags returns a MissingArgument error naming every flag in names
// that was not set on the command line.
func RequireFlags(fs *pflag.FlagSet, names ...string) error {
	var missing []string
	for _, name := range names {
		if !fs.Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return &ParseError{Kind: MissingArgument, Args: missing}
	}
	return nil
}

// RejectFlagLikeValues fails when a flag that takes a value is followed by
// a separate token that looks like another flag, as in "-k --input". The
// value may still start with a dash when attached with "=", and a lone "-"
// is always accepted. Parsing stops at "--".
func RejectFlagLikeValues(fs *pflag.FlagSet, args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		var f *pflag.Flag
		if strings.HasPrefix(arg, "--") {
			if strings.Contains(arg, "=") {
				continue
			}
			f = fs.Lookup(arg[2:])
		} else {
			f = shorthandNeedingNext(fs, arg[1:])
		}
		if f == nil || f.NoOptDefVal != "" || i+1 >= len(args) {
			continue
		}

		next := args[i+1]
		if len(next) > 1 && next[0] == '-' {
			return &ParseError{
				Kind:  InvalidValue,
				Args:  []string{"--" + f.Name},
				Value: next,
				Err:   fmt.Errorf("value looks like a flag; use --%s=%s to pass it", f.Name, next),
			}
		}
		i++
	}
	return nil
}

// shorthandNeedingNext walks a shorthand cluster such as "vk" and returns the
// flag that consumes the following token, or nil when the value is inline or
// no flag in the cluster takes one.
func shorthandNeedingNext(fs *pflag.FlagSet, cluster string) *pflag.Flag {
	if strings.Contains(cluster, "=") {
		return nil
	}
	for j := 0; j < len(cluster); j++ {
		f := fs.ShorthandLookup(cluster[j : j+1])
		if f == nil {
			return nil
		}
		if f.NoOptDefVal == "" {
			if j < len(cluster)-1 {
				return nil
			}
			return f
		}
	}
	return nil
}

type uintValue struct {
	p     *uint
	name  string
	owner *Values
}

func (u *uintValue) Set(s string) error {
	// A single leading plus sign is accepted, as in "+5".
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return u.owner.reject(u.name, s, err)
	}
	*u.p = uint(n)
	return nil
}

func (u *uintValue) String() string {
	if u.p == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*u.p), 10)
}

func (u *uintValue) Type() string { return "uint" }

type choiceValue struct {
	p       *string
	name    string
	choices []string
	owner   *Values
}

func (c *choiceValue) Set(s string) error {
	for _, choice := range c.choices {
		if s == choice {
			*c.p = s
			return nil
		}
	}
	return c.owner.reject(c.name, s, fmt.Errorf("must be one of %s", strings.Join(c.choices, ", ")))
}

func (c *choiceValue) String() string {
	if c.p == nil {
		return ""
	}
	return *c.p
}

func (c *choiceValue) Type() string { return "string" }
