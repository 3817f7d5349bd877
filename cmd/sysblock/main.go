// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// sysblock inspects block devices through the sysfs pseudo-filesystem.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysfsutils/go-sysclass/sysclass"
)

var opts struct {
	sysfsRoot string
	debug     bool
}

func main() {
	root := &cobra.Command{
		Use:          "sysblock",
		Short:        "inspect block devices through sysfs",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.sysfsRoot, "sysfs-root", "/sys", "sysfs mount point")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(listCmd(), treeCmd(), infoCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func sysFS() sysclass.FS {
	return sysclass.DirFS(opts.sysfsRoot)
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()

	if !opts.debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	return zap.Must(cfg.Build())
}
