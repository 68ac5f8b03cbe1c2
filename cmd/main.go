package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"

	"notioncal/internal/export"
	"notioncal/internal/google"
	"notioncal/internal/notion"
	"notioncal/internal/syncer"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "notioncal",
		Usage: "Sync tasks from a Notion database into Google Calendar.",
		Commands: []*cli.Command{
			authCommand(),
			syncCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authenticate with a Google account to get an API token.",
		Action: func(c *cli.Context) error {
			logger := setupLogger("info")
			logger.Info("Starting Google authentication flow.")

			config, err := google.GetOAuthConfigForAuthFlow(os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"))
			if err != nil {
				return fmt.Errorf("failed to get google oauth config: %w", err)
			}

			authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
			fmt.Printf("Go to the following link in your browser then type the "+
				"authorization code: \n%v\n", authURL)

			fmt.Print("Enter Authorization Code: ")
			reader := bufio.NewReader(os.Stdin)
			authCode, _ := reader.ReadString('\n')
			authCode = strings.TrimSpace(authCode)

			token, err := google.TokenFromWeb(config, authCode)
			if err != nil {
				return fmt.Errorf("unable to retrieve token from web: %w", err)
			}

			if err := google.SaveToken(google.TokenFile, token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			logger.Info("Successfully authenticated and saved token.", "file", google.TokenFile)
			return nil
		},
	}
}

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Run the task-to-calendar reconciliation.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dry-run", Usage: "Log what would be synced without making changes."},
			&cli.IntFlag{Name: "watch", Usage: "Run sync every N seconds."},
			&cli.StringFlag{Name: "cron", Usage: "Run sync on a cron schedule (e.g. '0 7 * * *'). Overrides --watch."},
		},
		Action: func(c *cli.Context) error {
			logger := setupLogger(os.Getenv("LOG_LEVEL"))

			if c.Bool("dry-run") {
				logger.Info("Performing a dry run. No changes will be made.")
			}

			nClient, err := notion.NewClient(logger, os.Getenv("NOTION_TOKEN"), os.Getenv("NOTION_DATABASE_ID"))
			if err != nil {
				return fmt.Errorf("failed to create notion client: %w", err)
			}

			gClient, err := google.NewClient(c.Context, logger, os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"))
			if err != nil {
				return fmt.Errorf("failed to create google client: %w", err)
			}

			loc, err := loadTimezone()
			if err != nil {
				return err
			}

			s := syncer.NewSyncer(logger, nClient, gClient, calendarID(), loc, c.Bool("dry-run"))

			if c.IsSet("cron") {
				logger.Info("Starting scheduler.", "schedule", c.String("cron"))
				runner := cron.New()
				_, err := runner.AddFunc(c.String("cron"), func() {
					if err := s.Sync(c.Context); err != nil {
						logger.Error("Sync cycle failed", "error", err)
					}
				})
				if err != nil {
					return fmt.Errorf("invalid cron schedule %q: %w", c.String("cron"), err)
				}
				runner.Run()
				return nil
			}

			if c.IsSet("watch") {
				interval := time.Duration(c.Int("watch")) * time.Second
				logger.Info("Starting watcher.", "interval", interval)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for ; true; <-ticker.C {
					if err := s.Sync(c.Context); err != nil {
						logger.Error("Sync cycle failed", "error", err)
					}
				}
			}

			logger.Info("Running a single sync cycle.")
			if err := s.Sync(c.Context); err != nil {
				return fmt.Errorf("single sync cycle failed: %w", err)
			}
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the dated tasks as an iCalendar file instead of syncing.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "notioncal.ics", Usage: "Path of the ICS file to write."},
		},
		Action: func(c *cli.Context) error {
			logger := setupLogger(os.Getenv("LOG_LEVEL"))

			nClient, err := notion.NewClient(logger, os.Getenv("NOTION_TOKEN"), os.Getenv("NOTION_DATABASE_ID"))
			if err != nil {
				return fmt.Errorf("failed to create notion client: %w", err)
			}

			loc, err := loadTimezone()
			if err != nil {
				return err
			}

			items, err := syncer.CollectItems(c.Context, logger, nClient)
			if err != nil {
				return err
			}

			f, err := os.Create(c.String("out"))
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			if err := export.WriteICS(f, items, loc); err != nil {
				return fmt.Errorf("failed to export calendar: %w", err)
			}
			logger.Info("Exported tasks.", "file", c.String("out"))
			return nil
		},
	}
}

// calendarID returns the target calendar, defaulting to the account's
// primary calendar.
func calendarID() string {
	if id := os.Getenv("GOOGLE_CALENDAR_ID"); id != "" {
		return id
	}
	return "primary"
}

func loadTimezone() (*time.Location, error) {
	tzStr := os.Getenv("CALENDAR_TIMEZONE")
	if tzStr == "" {
		tzStr = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(tzStr)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", tzStr, err)
	}
	return loc, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
