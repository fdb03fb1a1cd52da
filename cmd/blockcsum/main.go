// Command blockcsum prints the CRC-16 of data blocks and compares it with the
// checksum stored in their last two bytes.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anupcshan/bin2dataset/checksum"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:           "blockcsum files...",
		Short:         "Print and check the CRC-16 trailer of data blocks",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mismatched int
			for _, path := range args {
				ok, err := report(cmd.OutOrStdout(), path)
				if err != nil {
					return err
				}
				if !ok {
					mismatched++
				}
			}
			if strict && mismatched > 0 {
				return errors.Errorf("%d of %d blocks have a stale checksum", mismatched, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a stored checksum does not match")

	return cmd
}

func report(w io.Writer, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	sum, err := checksum.Block(data)
	if err != nil {
		return false, errors.Wrap(err, path)
	}

	stored := binary.BigEndian.Uint16(data[len(data)-checksum.TrailerLen:])
	status := "ok"
	if stored != sum {
		status = "stale"
	}

	_, err = fmt.Fprintf(w, "%s\t%04X\t%04X\t%s\n", path, sum, stored, status)
	return stored == sum, err
}
