package cmd

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/tdamianovich/portfolio/internal/content"
	"github.com/tdamianovich/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio site and watches locale files for changes",
	Long: `The serve command loads and validates the locale documents, opens the
metrics database, starts the web server and watches the locales and content
directories, reloading translations automatically on change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("sqlite", appConfig.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		metrics, err := web.NewMetrics(db)
		if err != nil {
			return err
		}

		catalog := content.NewCatalog(appConfig.LocalesDir, appConfig.ContentDir)
		catalog.Diag = metrics.RecordDiagnostic
		if err := catalog.Load(); err != nil {
			log.Printf("Warning: %v", err)
		}
		log.Printf("Loaded locale documents: %v", catalog.Languages())

		if err := watchContent(catalog); err != nil {
			log.Printf("Warning: locale watching disabled: %v", err)
		}

		server := web.New(appConfig, catalog, metrics)
		log.Printf("Serving portfolio on http://localhost:%d", appConfig.Port)
		return server.Run()
	},
}

// watchContent reloads the catalog when locale or content files change,
// debounced so a burst of writes triggers a single reload.
func watchContent(catalog *content.Catalog) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	go func() {
		var reloadTimer *time.Timer
		debounceDuration := 500 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())
					if reloadTimer != nil {
						reloadTimer.Stop()
					}
					reloadTimer = time.AfterFunc(debounceDuration, catalog.Reload)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()

	for _, dir := range []string{appConfig.LocalesDir, appConfig.ContentDir} {
		if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
			log.Printf("Directory '%s' not found, not watching.", dir)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			log.Printf("Failed to watch %s: %v", dir, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
