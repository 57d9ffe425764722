// Kohinoor Interiors showroom: the public marketing site and the quote relay
// behind its contact form.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kohinoor-interiors/showroom/internal/config"
	"github.com/kohinoor-interiors/showroom/internal/logging"
	"github.com/kohinoor-interiors/showroom/internal/models"
	"github.com/kohinoor-interiors/showroom/internal/quote"
	"github.com/kohinoor-interiors/showroom/internal/relay"
	"github.com/kohinoor-interiors/showroom/internal/server"
)

const asciiLogo = `
  _  __     _     _
 | |/ /___ | |__ (_)_ __   ___   ___  _ __
 | ' // _ \| '_ \| | '_ \ / _ \ / _ \| '__|
 | . \ (_) | | | | | | | | (_) | (_) | |
 |_|\_\___/|_| |_|_|_| |_|\___/ \___/|_|
`

const version = "v0.1.0"

const shutdownTimeout = 5 * time.Second

func printBanner(mode string) {
	fmt.Print(asciiLogo + "\n")
	fmt.Printf("  ► Kohinoor Interiors showroom %s  |  Mode: %s\n\n", version, mode)
}

func main() {
	root := &cobra.Command{
		Use:   "showroom",
		Short: "Kohinoor Interiors website and quote relay",
		Long: `showroom serves the Kohinoor Interiors marketing site and relays its
contact-form quote requests to the sales team.`,
		SilenceUsage: true,
	}

	// ── server subcommand ─────────────────────────────────────────────────────
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the public website",
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner("SITE")
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			site, err := newSiteServer(cfg, log)
			if err != nil {
				return err
			}
			fmt.Printf("  ✓ Website      → http://%s\n", cfg.SiteAddr())
			fmt.Printf("  ✓ Quote relay  → %s\n\n", cfg.QuoteEndpoint)
			return serve(cmd.Context(), log, site)
		},
	}

	// ── relay subcommand ──────────────────────────────────────────────────────
	relayCmd := &cobra.Command{
		Use:   "relay",
		Short: "Start the quote relay (POST /send-quote + staff API)",
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner("RELAY")
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			srv, closeStore, err := newRelayServer(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			printRelayInfo(cfg)
			return serve(cmd.Context(), log, srv)
		},
	}

	// ── up subcommand ─────────────────────────────────────────────────────────
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Start the website and the quote relay in one process",
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner("SITE + RELAY")
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			rel, closeStore, err := newRelayServer(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			site, err := newSiteServer(cfg, log)
			if err != nil {
				return err
			}

			fmt.Printf("  ✓ Website      → http://%s\n", cfg.SiteAddr())
			printRelayInfo(cfg)
			return serve(cmd.Context(), log, site, rel)
		},
	}

	// ── quote subcommand ──────────────────────────────────────────────────────
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Submit a quote request to the relay from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
				cfg.QuoteEndpoint = endpoint
			}
			var f quote.Form
			f.FullName, _ = cmd.Flags().GetString("name")
			f.Email, _ = cmd.Flags().GetString("email")
			f.Phone, _ = cmd.Flags().GetString("phone")
			pt, _ := cmd.Flags().GetString("type")
			f.ProjectType = models.ProjectType(pt)
			f.Message, _ = cmd.Flags().GetString("message")

			client := newQuoteClient(cfg, log)
			fmt.Printf("  → Sending to %s\n", client.Endpoint())
			receipt, err := client.Send(cmd.Context(), f)
			notice := quote.NoticeForError(err)
			fmt.Printf("  %s: %s\n", notice.Title, notice.Description)
			if err != nil {
				var verr *quote.ValidationError
				if errors.As(err, &verr) {
					for _, fe := range verr.Fields {
						fmt.Printf("    - %s: %s\n", fe.Field, fe.Message)
					}
				}
				return err
			}
			if receipt.ID != "" {
				fmt.Printf("  Reference: %s\n", receipt.ID)
			}
			return nil
		},
	}
	quoteCmd.Flags().String("name", "", "Full name")
	quoteCmd.Flags().String("email", "", "Email address")
	quoteCmd.Flags().String("phone", "", "Phone number")
	quoteCmd.Flags().String("type", "", "Project type: residential, commercial or custom")
	quoteCmd.Flags().String("message", "", "Project description")
	quoteCmd.Flags().String("endpoint", "", "Relay URL (overrides quote_endpoint)")

	// ── version subcommand ────────────────────────────────────────────────────
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Kohinoor Interiors showroom %s\n", version)
		},
	}

	root.AddCommand(serverCmd, relayCmd, upCmd, quoteCmd, versionCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)
	return cfg, log, nil
}

func newQuoteClient(cfg *config.Config, log *zap.Logger) *quote.Client {
	return quote.NewClient(cfg.QuoteEndpoint,
		quote.WithTimeout(cfg.QuoteTimeout()),
		quote.WithToken(cfg.QuoteToken),
		quote.WithLogger(log.Named("quote")),
	)
}

func newSiteServer(cfg *config.Config, log *zap.Logger) (*http.Server, error) {
	site := &server.Site{
		Quotes:   newQuoteClient(cfg, log),
		Logger:   log.Named("site"),
		Interval: cfg.TestimonialInterval(),
	}
	engine, err := site.Engine()
	if err != nil {
		return nil, fmt.Errorf("building site: %w", err)
	}
	return &http.Server{Addr: cfg.SiteAddr(), Handler: engine, ReadHeaderTimeout: 10 * time.Second}, nil
}

// newRelayServer opens the quote store and builds the relay. The returned
// func closes the store.
func newRelayServer(cfg *config.Config, log *zap.Logger) (*http.Server, func() error, error) {
	store, err := relay.Open(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	auth, err := relay.NewAuth(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPass)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("initializing auth: %w", err)
	}

	var notifier relay.Notifier = relay.LogNotifier{Logger: log.Named("notify")}
	if cfg.SMTPHost != "" {
		smtpNotifier, err := relay.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom, cfg.MailTo)
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("initializing mail: %w", err)
		}
		notifier = smtpNotifier
	}

	rel := &relay.Server{
		Store:          store,
		Notifier:       notifier,
		Auth:           auth,
		Logger:         log.Named("relay"),
		SubmitToken:    cfg.RelayToken,
		AllowedOrigins: cfg.AllowedOrigins,
	}
	srv := &http.Server{Addr: cfg.RelayAddr(), Handler: rel.Engine(), ReadHeaderTimeout: 10 * time.Second}
	return srv, store.Close, nil
}

func printRelayInfo(cfg *config.Config) {
	fmt.Printf("  ✓ Quote relay  → http://%s/send-quote\n", cfg.RelayAddr())
	fmt.Printf("  ✓ Staff API    → http://%s/api (login: %s)\n", cfg.RelayAddr(), cfg.AdminUser)
	if cfg.SMTPHost == "" {
		fmt.Println("  ! smtp_host not set: quote notifications go to the log")
	}
	fmt.Println()
}

// serve listens on every server's address and runs them until one fails or
// SIGINT arrives, then shuts all of them down.
func serve(ctx context.Context, log *zap.Logger, servers ...*http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	listeners := make([]net.Listener, 0, len(servers))
	for _, srv := range servers {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		listeners = append(listeners, ln)
	}
	return serveListeners(ctx, log, servers, listeners)
}

// serveListeners runs servers[i] on listeners[i] until ctx is done. Request
// contexts are cancelled before Shutdown, so long-lived responses such as the
// testimonial stream end instead of holding shutdown open.
func serveListeners(ctx context.Context, log *zap.Logger, servers []*http.Server, listeners []net.Listener) error {
	reqCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()
	for _, srv := range servers {
		srv.BaseContext = func(net.Listener) context.Context { return reqCtx }
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		srv, ln := srv, listeners[i]
		g.Go(func() error {
			log.Info("listening", zap.String("addr", ln.Addr().String()))
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s: %w", ln.Addr(), err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		cancelRequests()

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(sctx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}
