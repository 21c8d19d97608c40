package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/vsb"
	"github.com/calebcase/vsb/control"
	"github.com/calebcase/vsb/integer"
)

// Error is the error class for the command.
var Error = errs.Class("vsb")

var opt struct {
	signed bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vsb",
		Short:         "Encode and decode variable size byte integers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	subcmds := []*cobra.Command{
		{
			Use:   "encode VALUE...",
			Short: "print the hex encoding of each value",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runEncode(cmd.OutOrStdout(), args)
			},
		},
		{
			Use:   "decode HEX...",
			Short: "decode every value in each hex string",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDecode(cmd.OutOrStdout(), args)
			},
		},
		{
			Use:   "dump HEX",
			Short: "show the byte layout of each value in a hex string",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDump(cmd.OutOrStdout(), args[0])
			},
		},
		{
			Use:   "demo",
			Short: "encode and decode sample values",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd.OutOrStdout())
			},
		},
	}

	for _, sc := range subcmds {
		if sc.Name() != "demo" {
			sc.Flags().BoolVarP(&opt.signed, "signed", "s", false,
				"use the signed layout")
		}

		root.AddCommand(sc)
	}

	return root
}

func runEncode(w io.Writer, args []string) (err error) {
	defer Error.WrapP(&err)

	out := &bytes.Buffer{}
	e := integer.NewEncoder(integer.Schema{Signed: opt.signed}, out)

	for _, arg := range args {
		var blk integer.Block

		if opt.signed {
			v, err := strconv.ParseInt(arg, 0, 64)
			if err != nil {
				return err
			}

			blk = integer.FromInt64(v)
		} else {
			v, err := strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return err
			}

			blk = integer.FromUint64(v)
		}

		out.Reset()

		_, err = e.Encode(&blk)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, hex.EncodeToString(out.Bytes()))
		if err != nil {
			return err
		}
	}

	return nil
}

func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", "_", "", ":", "").Replace(s)

	return hex.DecodeString(s)
}

func runDecode(w io.Writer, args []string) (err error) {
	defer Error.WrapP(&err)

	for _, arg := range args {
		data, err := parseHex(arg)
		if err != nil {
			return err
		}

		d := integer.NewDecoder(integer.Schema{Signed: opt.signed}, bytes.NewReader(data))

		for {
			var blk integer.Block

			n, err := d.Decode(&blk)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}

			if opt.signed {
				v, err := blk.Int64()
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(w, "%d %d\n", v, n)
				if err != nil {
					return err
				}
			} else {
				_, err = fmt.Fprintf(w, "%d %d\n", blk.Value, n)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func runDump(w io.Writer, arg string) (err error) {
	defer Error.WrapP(&err)

	data, err := parseHex(arg)
	if err != nil {
		return err
	}

	fields, err := control.Describe(data, opt.signed, vsb.MaxLen)
	if err != nil {
		return err
	}

	schema := integer.Schema{Signed: opt.signed}

	for _, f := range fields {
		var blk integer.Block

		_, err = integer.NewDecoder(schema, bytes.NewReader(f.Bytes)).Decode(&blk)
		if err != nil {
			return Error.New("offset %d: %v", f.Offset, err)
		}

		var value string

		if opt.signed {
			v, err := blk.Int64()
			if err != nil {
				return err
			}

			value = strconv.FormatInt(v, 10)
		} else {
			value = strconv.FormatUint(blk.Value, 10)
		}

		_, err = fmt.Fprintf(w, "%04d  %-29s  %-19s  %s\n",
			f.Offset,
			fmt.Sprintf("% x", f.Bytes),
			f.Abbr(),
			value,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func runDemo(w io.Writer) (err error) {
	defer Error.WrapP(&err)

	var buf [16]byte

	const unsigned uint64 = 262144
	const signed int64 = -262144

	_, err = fmt.Fprintf(w, "Pre-encoded unsigned value: %d\n", unsigned)
	if err != nil {
		return err
	}

	vsb.PutUint64(buf[:], unsigned)

	_, err = fmt.Fprintf(w, "% x\n", buf[:])
	if err != nil {
		return err
	}

	u, _ := vsb.Uint64(buf[:])

	_, err = fmt.Fprintf(w, "Post-encoded unsigned value: %d\n", u)
	if err != nil {
		return err
	}

	buf = [16]byte{}

	_, err = fmt.Fprintf(w, "Pre-encoded signed value: %d\n", signed)
	if err != nil {
		return err
	}

	vsb.PutInt64(buf[:], signed)

	_, err = fmt.Fprintf(w, "% x\n", buf[:])
	if err != nil {
		return err
	}

	s, _ := vsb.Int64(buf[:])

	_, err = fmt.Fprintf(w, "Post-encoded signed value: %d\n", s)
	if err != nil {
		return err
	}

	return nil
}
