package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"anvil/internal/platform"
)

var libraryNamesCmd = &cobra.Command{
	Use:   "library-names",
	Short: "Show the library naming convention for a platform",
	RunE:  runLibraryNames,
}

func init() {
	libraryNamesCmd.Flags().String("target", "", "platform triple (required)")
	libraryNamesCmd.Flags().Bool("msvc-layout", false, "use the MSVC naming layout on mingw targets")
	_ = libraryNamesCmd.MarkFlagRequired("target")
}

func runLibraryNames(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(cmd)
	if err != nil {
		return err
	}
	if err := libraryNames(cmd); err != nil {
		reporter.Report(err)
		return err
	}
	return nil
}

func libraryNames(cmd *cobra.Command) error {
	targetRaw, err := cmd.Flags().GetString("target")
	if err != nil {
		return fmt.Errorf("failed to get target flag: %w", err)
	}
	target, err := platform.ParseTriple(targetRaw)
	if err != nil {
		return err
	}
	msvcLayout, _ := cmd.Flags().GetBool("msvc-layout")

	names, err := platform.ResolveLibraryNames(target.OS, msvcLayout)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dll prefix:        %s\n", names.DLLPrefix)
	fmt.Fprintf(out, "dll suffix:        %s\n", names.DLLSuffix)
	fmt.Fprintf(out, "lib prefix:        %s\n", names.LibPrefix)
	fmt.Fprintf(out, "lib suffix:        %s\n", names.LibSuffix)
	fmt.Fprintf(out, "import lib suffix: %s\n", names.ImportLibSuffix)
	fmt.Fprintf(out, "obj suffix:        %s\n", names.ObjSuffix)
	return nil
}
