// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sysfsutils/go-sysclass/block"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <device>",
		Short: "show the attributes of a single block device",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			fsys := sysFS()

			name := strings.TrimPrefix(args[0], "/dev/")

			var (
				dev *block.Device
				err error
			)

			if strings.HasPrefix(args[0], "/dev/") {
				dev, err = block.FromDevNode(fsys, args[0])
			} else {
				dev, err = block.FromName(fsys, name)
			}

			if err != nil {
				return err
			}

			info, err := block.Describe(dev)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "name:\t%s\n", info.Name)
			fmt.Fprintf(w, "path:\t%s\n", info.Path)
			fmt.Fprintf(w, "type:\t%s\n", info.Type)
			fmt.Fprintf(w, "size:\t%s\n", humanize.IBytes(info.Size))

			printOptional(w, "model", info.Model)
			printOptional(w, "vendor", info.Vendor)
			printOptional(w, "serial", info.Serial)
			printOptional(w, "state", info.State)
			printOptional(w, "wwid", info.WWID)

			printOptionalBool(w, "rotational", info.Rotational)
			printOptionalBool(w, "read-only", info.ReadOnly)
			printOptionalBool(w, "removable", info.Removable)

			if info.Scheduler != nil {
				fmt.Fprintf(w, "schedulers:\t%s\n", strings.Join(info.Scheduler.Names, " "))
				fmt.Fprintf(w, "active scheduler:\t%s\n", info.Scheduler.ActiveName())
			}

			if parent, ok := dev.ParentDevice(); ok {
				fmt.Fprintf(w, "parent:\t%s\n", parent.Name())
			}

			children, err := dev.Children()
			if err == nil && len(children) > 0 {
				childNames := make([]string, 0, len(children))
				for _, child := range children {
					childNames = append(childNames, child.Name())
				}

				fmt.Fprintf(w, "children:\t%s\n", strings.Join(childNames, " "))
			}

			return w.Flush()
		},
	}
}

func printOptional(w *tabwriter.Writer, label string, value *string) {
	if value == nil {
		return
	}

	fmt.Fprintf(w, "%s:\t%s\n", label, *value)
}

func printOptionalBool(w *tabwriter.Writer, label string, value *bool) {
	if value == nil {
		return
	}

	fmt.Fprintf(w, "%s:\t%t\n", label, *value)
}
