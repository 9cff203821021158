// Command seed manages the content collections from the terminal: import a
// dump archive, export the current content, or load the default set.
package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/config"
	"github.com/ahamedusman/portfolio-core/internal/database"
	"github.com/ahamedusman/portfolio-core/internal/seed"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage portfolio content collections",
	Long: `seed imports, exports and resets the portfolio content collections.

Dumps are ZIP archives with one entry per collection (profiles.json,
blogs.bson, ...); JSON and mongodump-style BSON entries are both accepted.`,
}

var fillDefaults bool

var importCmd = &cobra.Command{
	Use:   "import <archive.zip>",
	Short: "Bulk-replace collections from a dump archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		if err := seed.Import(db, zr, fillDefaults); err != nil {
			return err
		}
		fmt.Println("import complete")
		return nil
	},
}

var (
	exportFormat string
	exportOut    string
	exportToS3   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export collections to a dump archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		buf, err := seed.Export(db, exportFormat)
		if err != nil {
			return err
		}

		filename := seed.ArchiveFilename(time.Now())
		out := exportOut
		if out == "" {
			out = filename
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write archive: %w", err)
		}
		fmt.Printf("exported to %s\n", out)

		if exportToS3 {
			uploader, err := seed.NewS3Uploader(cfg.S3)
			if err != nil {
				return err
			}
			key := "seeds/" + filepath.Base(out)
			url, err := uploader.Upload(context.Background(), key, buf.Bytes(), "application/zip")
			if err != nil {
				return err
			}
			fmt.Printf("uploaded to %s\n", url)
		}
		return nil
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Replace all collections with the built-in content set",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err := seed.ApplyDefaults(db); err != nil {
			return err
		}
		fmt.Println("default content loaded")
		return nil
	},
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return database.Connect(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigPath, "Path to YAML config file")
	importCmd.Flags().BoolVar(&fillDefaults, "fill-defaults", false, "Seed collections missing from the archive with default content")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Dump format: json or bson")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path (default portfolio-seed-<timestamp>.zip)")
	exportCmd.Flags().BoolVar(&exportToS3, "s3", false, "Also upload the archive to the configured S3 bucket")
	rootCmd.AddCommand(importCmd, exportCmd, defaultsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
