package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/skillpack/internal/branding"
	"github.com/agentx-labs/skillpack/internal/config"
	"github.com/agentx-labs/skillpack/internal/logger"
	"github.com/agentx-labs/skillpack/internal/packager"
	"github.com/agentx-labs/skillpack/internal/skill"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// rootOptions holds the flag values of one command invocation.
type rootOptions struct {
	check      bool
	dryRun     bool
	exclude    []string
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <skill_dir> [output_dir]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` validates the SKILL.md frontmatter of a skill folder and packages the
folder into <name>.skill, a zip archive whose entries all live under <name>/.

SKILL.md must start with a frontmatter block declaring exactly two fields:

  ---
  name: my-skill
  description: What the skill does
  ---

The name must be 1-64 lowercase letters, digits or hyphens and must equal the
folder name. .git/, __pycache__/, *.pyc and .DS_Store are never packaged.

Environment:
` + envHelp() + `
Examples:
  ` + branding.CLIName() + ` ./skills/my-skill
  ` + branding.CLIName() + ` ./skills/my-skill ./dist
  ` + branding.CLIName() + ` --check ./skills/my-skill`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLogOutput(cmd.ErrOrStderr())
			if err := config.Load(opts.configFile); err != nil {
				return err
			}
			level := opts.logLevel
			if level == "" {
				level = config.LogLevel()
			}
			if err := logger.SetLogLevel(level); err != nil {
				return fmt.Errorf("invalid log level %q: %w", level, err)
			}
			format := opts.logFormat
			if format == "" {
				format = config.LogFormat()
			}
			switch format {
			case "fmt", "text", "json":
				logger.SetLogFormat(format)
			default:
				return fmt.Errorf("invalid log format %q: use fmt or json", format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackage(cmd, opts, args)
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}} (commit: %s, built: %s)\n",
		branding.CLIName(), buildCommit, buildDate))

	f := cmd.Flags()
	f.BoolVar(&opts.check, "check", false, "Validate the skill without writing an archive")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print the archive entries without writing an archive")
	f.StringArrayVar(&opts.exclude, "exclude", nil, "Extra glob pattern to leave out of the archive (repeatable)")
	f.StringVar(&opts.configFile, "config", "", "Config file (default: "+config.FilePath()+")")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format: fmt or json")
	cmd.MarkFlagsMutuallyExclusive("check", "dry-run")

	return cmd
}

// envHelp lists the environment variables that override config keys.
func envHelp() string {
	var b strings.Builder
	for _, key := range config.Keys {
		fmt.Fprintf(&b, "  %-24s overrides %s\n", branding.EnvVar(key), key)
	}
	return b.String()
}

func runPackage(cmd *cobra.Command, opts *rootOptions, args []string) error {
	out := cmd.OutOrStdout()
	skillDir := args[0]

	if opts.check {
		md, err := skill.Load(skillDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Valid skill: %s\n", md.Name)
		return nil
	}

	pkgOpts := packager.Options{
		OutputDir: config.OutputDir(),
		Exclude:   append(config.Exclude(), opts.exclude...),
	}
	if len(args) > 1 {
		pkgOpts.OutputDir = args[1]
	}

	if opts.dryRun {
		res, err := packager.ListFiles(skillDir, pkgOpts)
		if err != nil {
			return err
		}
		for _, e := range res.Entries {
			fmt.Fprintln(out, e)
		}
		return nil
	}

	res, err := packager.Package(skillDir, pkgOpts)
	if err != nil {
		return err
	}
	logger.L.WithField("entries", len(res.Entries)).Info("archive written")
	fmt.Fprintf(out, "Packaged skill: %s\n", res.OutputPath)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return newRootCmd().Execute()
}
