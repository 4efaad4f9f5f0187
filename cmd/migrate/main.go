package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/logging"
)

type options struct {
	configFile string
	migrateDir string
	fixtures   string
	createOnly bool
}

// target identifies the database named by source.spanner_database.
type target struct {
	project  string
	instance string
	database string
}

func (t target) instancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", t.project, t.instance)
}

func (t target) databasePath() string {
	return t.instancePath() + "/databases/" + t.database
}

func parseTarget(path string) (target, error) {
	parts := strings.Split(path, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return target{}, fmt.Errorf("invalid spanner database path %q", path)
	}
	return target{project: parts[1], instance: parts[3], database: parts[5]}, nil
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Create the Spanner schema and load catalog fixtures",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(opts, func(cfg *config.Config, logger *zap.Logger, t target) error {
				return migrate(cmd.Context(), logger, t, opts)
			})
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: ./config.yaml or ./configs/config.yaml)")
	root.Flags().StringVar(&opts.migrateDir, "migrations", "migrations", "directory containing migration SQL files")
	root.Flags().BoolVar(&opts.createOnly, "create-only", false, "create instance and database without applying migrations")

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Write the fixtures file into the catalog tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(opts, func(cfg *config.Config, logger *zap.Logger, t target) error {
				path := opts.fixtures
				if path == "" {
					path = cfg.Source.Fixtures
				}
				return seedCatalog(cmd.Context(), logger, t, path)
			})
		},
	}
	seed.Flags().StringVar(&opts.fixtures, "fixtures", "", "fixtures file (default: source.fixtures from config)")
	root.AddCommand(seed)

	return root
}

func withEnv(opts *options, fn func(*config.Config, *zap.Logger, target) error) error {
	cfg, err := config.Load(config.Options{ConfigFile: opts.configFile})
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	t, err := parseTarget(cfg.Source.SpannerDatabase)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		logger.Info("using Spanner emulator", zap.String("host", host))
	}

	if err := fn(cfg, logger, t); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		return err
	}
	return nil
}

func migrate(ctx context.Context, logger *zap.Logger, t target, opts *options) error {
	if err := ensureInstance(ctx, logger, t); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	if err := ensureDatabase(ctx, logger, t); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	if opts.createOnly {
		return nil
	}

	if err := applyMigrations(ctx, logger, t, opts.migrateDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations completed")
	return nil
}

func seedCatalog(ctx context.Context, logger *zap.Logger, t target, path string) error {
	rows, err := repo.LoadFixtures(path)
	if err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, t.databasePath())
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	written, err := repo.Seed(ctx, committer.NewCommitter(client), rows)
	if err != nil {
		return fmt.Errorf("seeded %d rows before failing: %w", written, err)
	}

	logger.Info("catalog seeded", zap.String("fixtures", path), zap.Int("rows", written))
	return nil
}

func ensureInstance(ctx context.Context, logger *zap.Logger, t target) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: t.instancePath()})
	if err == nil {
		logger.Info("instance already exists", zap.String("instance", t.instance))
		return nil
	}

	if status.Code(err) != codes.NotFound {
		logger.Warn("unexpected error checking instance", zap.Error(err))
		return nil
	}

	logger.Info("creating instance", zap.String("instance", t.instance))
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + t.project,
		InstanceId: t.instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", t.project),
			DisplayName: "Storefront Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create instance: %w", err)
		}
		return nil
	}

	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		logger.Warn("instance creation did not complete cleanly", zap.Error(err))
	}
	return nil
}

func ensureDatabase(ctx context.Context, logger *zap.Logger, t target) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: t.databasePath()})
	if err == nil {
		logger.Info("database already exists", zap.String("database", t.database))
		return nil
	}

	if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			logger.Warn("proceeding with database in emulator mode", zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	logger.Info("creating database", zap.String("database", t.database))
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          t.instancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", t.database),
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create database: %w", err)
		}
		return nil
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func applyMigrations(ctx context.Context, logger *zap.Logger, t target, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("no migration files found", zap.String("dir", dir))
		return nil
	}
	sort.Strings(files)

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   t.databasePath(),
			Statements: splitDDLStatements(string(content)),
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}

		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}

		logger.Info("applied migration", zap.String("file", name))
	}

	return nil
}

func splitDDLStatements(content string) []string {
	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	content = strings.Join(cleaned, "\n")

	statements := strings.Split(content, ";")
	var result []string
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			result = append(result, stmt)
		}
	}

	return result
}
