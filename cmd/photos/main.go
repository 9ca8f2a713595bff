// photos organizes image files into per-user albums of tagged photos.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	libraryFlag string
	dataFlag    string
	userFlag    string
	rootCmd     = &cobra.Command{
		Use:           "photos",
		Short:         "Organize photos into albums, tag them, and search them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&libraryFlag, "library", "", "library file (overrides PHOTOS_LIBRARY)")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "stock image directory (overrides PHOTOS_DATA_DIR)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "user to act as")
}

func main() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "photos:", err)
		os.Exit(1)
	}
}
