package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostera/internal/infrastructure/auth"
	"kostera/internal/infrastructure/config"
	"kostera/internal/infrastructure/database"
	"kostera/internal/infrastructure/persistence/seeds"
	"kostera/internal/shared/logger"
)

var (
	env                string
	superadminEmail    string
	superadminPassword string
	withDemo           bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed catalog data",
		Long:  `Seed the role catalog, the default plans and the superadmin account. Safe to run repeatedly.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&superadminEmail, "superadmin-email", "admin@kostera.local", "Superadmin email")
	cmd.Flags().StringVar(&superadminPassword, "superadmin-password", "", "Superadmin password (required)")
	cmd.Flags().BoolVar(&withDemo, "demo", false, "Also seed the demo tenant with sample data")
	cmd.MarkFlagRequired("superadmin-password")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	passwordHash, err := hasher.Hash(superadminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash superadmin password: %w", err)
	}

	if err := seeds.SeedAll(database.Get(), superadminEmail, passwordHash); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if withDemo {
		demoHash, err := hasher.Hash("demo12345")
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		if err := seeds.SeedDemoTenant(database.Get(), demoHash); err != nil {
			return fmt.Errorf("demo seeding failed: %w", err)
		}
		fmt.Println("demo tenant seeded (owner@kostbahagia.test / demo12345)")
	}

	fmt.Println("seed completed")
	return nil
}
