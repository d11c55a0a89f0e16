package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jrsteele09/go-blog-client/client"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/internal/logging"
	"github.com/jrsteele09/go-blog-client/localstore"
	"github.com/spf13/cobra"
)

// app holds what every command shares. The client is built once the flags are parsed.
type app struct {
	cfg       config.Config
	client    *client.Client
	apiURL    string
	tokenFile string
	output    string
	timeout   time.Duration
	verbose   bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{cfg: config.New()}

	root := &cobra.Command{
		Use:   "blogctl",
		Short: "Command line client for the blog API",
		Long: `blogctl signs you in to the blog API, keeps your session between runs
and lets you read, write and comment on blogs.

The API base URL comes from --api or BLOG_API_BASE_URL, and the session is
stored in --token-file (default $FOLDER/tokens.json).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api", a.cfg.GetAPIBaseURL(), "API base URL")
	flags.StringVar(&a.tokenFile, "token-file", a.cfg.GetTokenFile(), "File the session tokens are kept in")
	flags.StringVarP(&a.output, "output", "o", outputText, "Output format: text, json or yaml")
	flags.DurationVar(&a.timeout, "timeout", a.cfg.GetHTTPTimeout(), "Timeout for each API call")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log API traffic to stderr")

	root.AddCommand(
		a.loginCmd(),
		a.signupCmd(),
		a.logoutCmd(),
		a.verifyCmd(),
		a.resetRequestCmd(),
		a.resetCmd(),
		a.whoamiCmd(),
		a.blogsCmd(),
		a.commentsCmd(),
		a.userCmd(),
		a.categoriesCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := a.cfg.GetLogLevel()
	if a.verbose {
		level = "debug"
	}
	logging.SetupWriter(cmd.ErrOrStderr(), "DEV", level)

	if err := validOutput(a.output); err != nil {
		return err
	}

	c, err := client.New(a.cfg,
		client.WithBaseURL(a.apiURL),
		client.WithStore(localstore.NewFileStore(a.tokenFile)),
		client.WithHTTPClient(httpClient(a.timeout)),
	)
	if err != nil {
		return fmt.Errorf("could not create client: %w", err)
	}
	a.client = c
	return nil
}

// ready runs the startup session check so commands see the stored session.
func (a *app) ready(cmd *cobra.Command) error {
	return a.client.Start(cmd.Context())
}
