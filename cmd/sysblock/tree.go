// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysfsutils/go-sysclass/block"
)

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "show the partition hierarchy and backing devices",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			logger := newLogger()
			defer logger.Sync() //nolint:errcheck

			devices, err := block.All(sysFS())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()

			for _, dev := range devices {
				if _, isPartition := dev.ParentDevice(); isPartition {
					continue
				}

				fmt.Fprintf(out, "%s (%s)\n", dev.Name(), dev.Type())

				children, err := dev.Children()
				if err != nil {
					logger.Warn("listing children",
						zap.String("device", dev.Name()),
						zap.Error(err))

					continue
				}

				for _, child := range children {
					fmt.Fprintf(out, "  └─%s\n", child.Name())
				}

				slaves, ok := dev.Slaves()
				if !ok {
					continue
				}

				for path, err := range slaves {
					if err != nil {
						logger.Warn("listing slaves",
							zap.String("device", dev.Name()),
							zap.Error(err))

						break
					}

					fmt.Fprintf(out, "  <─%s\n", filepath.Base(path))
				}
			}

			return nil
		},
	}
}
