// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysfsutils/go-sysclass/block"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list block devices",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			logger := newLogger()
			defer logger.Sync() //nolint:errcheck

			devices, err := block.All(sysFS())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tSIZE\tSCHEDULER\tMODEL")

			for _, dev := range devices {
				info, err := block.Describe(dev)
				if err != nil {
					logger.Warn("skipping device",
						zap.String("device", dev.Name()),
						zap.Error(err))

					continue
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					info.Name,
					info.Type,
					humanize.IBytes(info.Size),
					strOrDash(schedulerName(info)),
					strOrDash(deref(info.Model)),
				)
			}

			return w.Flush()
		},
	}
}

func schedulerName(info block.Info) string {
	if info.Scheduler == nil {
		return ""
	}

	return info.Scheduler.ActiveName()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func strOrDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
