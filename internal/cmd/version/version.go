package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/dave-shawley/coercion/internal/flags/enum"
)

const (
	FlagFormat          = "format"
	FlagFormatShorthand = "f"

	FormatShort             = "short"
	FormatGoBuildInfo       = "gobuildinfo"
	FormatGoBuildInfoJSON   = "gobuildinfojson"
	noVersion               = "n/a"
	developmentBuildVersion = "(devel)"
)

// BuildVersion overrides the module version reported by the build info.
// It can be set at build time with
//
//	-ldflags "-X github.com/dave-shawley/coercion/internal/cmd/version.BuildVersion=1.2.3"
var BuildVersion = noVersion

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// New returns the version command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version of coerce",
		Long: fmt.Sprintf(`Print the build version of coerce.

With --%[1]s %[2]s only the version is printed. %[3]q prints the full Go build
information and %[4]q prints the same information as JSON.`, FlagFormat, FormatShort, FormatGoBuildInfo, FormatGoBuildInfoJSON),
		Args:              cobra.NoArgs,
		RunE:              Version,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	enum.VarP(cmd.Flags(), FlagFormat, FlagFormatShorthand, []string{
		FormatShort,
		FormatGoBuildInfo,
		FormatGoBuildInfoJSON,
	}, "format of the version information")
	return cmd
}

// Version is the RunE of the version command.
func Version(cmd *cobra.Command, _ []string) error {
	format, err := enum.Get(cmd.Flags(), FlagFormat)
	if err != nil {
		return err
	}
	info, ok := readBuildInfo()
	if !ok {
		return fmt.Errorf("no build info available")
	}
	if BuildVersion != noVersion {
		info.Main.Version = BuildVersion
	}

	out := cmd.OutOrStdout()
	switch format {
	case FormatShort:
		version := info.Main.Version
		if version == "" {
			version = developmentBuildVersion
		}
		_, err = fmt.Fprintln(out, version)
	case FormatGoBuildInfo:
		_, err = io.WriteString(out, info.String())
	case FormatGoBuildInfoJSON:
		err = json.NewEncoder(out).Encode(info)
	}
	return err
}
