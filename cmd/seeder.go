package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/frahmantamala/reimbursement-workflow/internal/auth"
	"github.com/frahmantamala/reimbursement-workflow/internal/policy"
	policyPostgres "github.com/frahmantamala/reimbursement-workflow/internal/policy/postgres"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
	userPostgres "github.com/frahmantamala/reimbursement-workflow/internal/user/postgres"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users and policies for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		lg := logger.LoggerWrapper()
		hasher := auth.NewCredentialHasher(cfg.Security.BCryptCost)
		userService := user.NewService(userPostgres.NewUserRepository(gormDB), hasher, lg)
		policyService := policy.NewService(policyPostgres.NewPolicyRepository(gormDB), lg)

		if err := userService.EnsureMasterAdmin(cfg.Security.MasterAdminPassword); err != nil {
			log.Fatalf("failed to seed master admin: %v", err)
		}

		managerID := int64(2)
		sampleUsers := []user.CreateUserDTO{
			{EmpID: 2, Name: "Maya Manager", Role: user.RoleManager, Password: "password"},
			{EmpID: 3, Name: "Farid Finance", Role: user.RoleFinance, Password: "password"},
			{EmpID: 4, Name: "Andi Auditor", Role: user.RoleAudit, Password: "password"},
			{EmpID: 5, Name: "Eka Employee", Role: user.RoleEmployee, Password: "password", ManagerID: &managerID},
		}

		for _, dto := range sampleUsers {
			if _, err := userService.CreateUser(dto); err != nil {
				if errors.Is(err, internal.ErrDuplicateUser) {
					fmt.Printf("user %d already exists, skipping\n", dto.EmpID)
					continue
				}
				log.Fatalf("failed to seed user %d: %v", dto.EmpID, err)
			}
			fmt.Printf("Seeded user: %s (%s)\n", dto.Name, dto.Role)
		}

		samplePolicies := []policy.UpsertPolicyDTO{
			{Category: "Travel", AmountLimit: 500, Description: "Transport and business travel"},
			{Category: "Meals", AmountLimit: 100, Description: "Meals and entertainment"},
			{Category: "Office", AmountLimit: 250, Description: "Office supplies and equipment"},
		}

		for _, dto := range samplePolicies {
			if _, err := policyService.UpsertPolicy(dto); err != nil {
				log.Fatalf("failed to seed policy %s: %v", dto.Category, err)
			}
			fmt.Printf("Seeded policy: %s\n", dto.Category)
		}

		fmt.Println("Sample data seeded successfully")
	},
}
