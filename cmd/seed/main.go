package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/config"
	"hacktheshell/pkg/database"
	"hacktheshell/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	var (
		adminID    string
		adminEmail string
	)
	flag.StringVar(&adminID, "admin-id", "admin", "ID of the seeded admin user")
	flag.StringVar(&adminEmail, "admin-email", "admin@hacktheshell.dev", "Email of the seeded admin user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(context.Background(), db, adminID, adminEmail, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, adminID, adminEmail string, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	toolRepo := persistent.NewToolRepository(db)
	configRepo := persistent.NewSiteConfigRepository(db)

	if _, err := userRepo.Upsert(ctx, &entity.User{ID: adminID, Username: adminID, Email: adminEmail}); err != nil {
		return fmt.Errorf("failed to upsert admin user: %w", err)
	}
	if _, err := userRepo.UpdateRole(ctx, adminID, entity.RoleAdmin); err != nil {
		return fmt.Errorf("failed to promote admin user: %w", err)
	}
	log.Info("Admin user %s ready", adminID)

	admin := usecase.Actor{UserID: adminID, Role: entity.RoleAdmin}
	posts := usecase.NewPostUseCase(postRepo, nil, log)
	tools := usecase.NewToolUseCase(toolRepo, nil, log)
	siteConfig := usecase.NewSiteConfigUseCase(configRepo, nil, log)

	for _, post := range samplePosts() {
		if _, err := postRepo.GetBySlug(ctx, post.Slug); err == nil {
			log.Info("Post %s already exists, skipping", post.Slug)
			continue
		} else if !errors.Is(err, entity.ErrNotFound) {
			return err
		}

		if _, err := posts.CreatePost(ctx, admin, post); err != nil {
			log.Error("Failed to create post %s: %v", post.Slug, err)
			continue
		}
		log.Info("Created post: %s", post.Slug)
	}

	for _, tool := range sampleTools() {
		if _, err := toolRepo.GetBySlug(ctx, tool.Slug); err == nil {
			log.Info("Tool %s already exists, skipping", tool.Slug)
			continue
		} else if !errors.Is(err, entity.ErrNotFound) {
			return err
		}

		if _, err := tools.CreateTool(ctx, admin, tool); err != nil {
			log.Error("Failed to create tool %s: %v", tool.Slug, err)
			continue
		}
		log.Info("Created tool: %s", tool.Slug)
	}

	if _, err := configRepo.Get(ctx, entity.ConfigMaintenanceMode); errors.Is(err, entity.ErrNotFound) {
		if _, err := siteConfig.SetMaintenanceMode(ctx, admin, false); err != nil {
			return fmt.Errorf("failed to seed maintenance flag: %w", err)
		}
	} else if err != nil {
		return err
	}

	return nil
}

func samplePosts() []*entity.BlogPost {
	return []*entity.BlogPost{
		{
			Slug:     "getting-started-with-nmap",
			Title:    "Getting Started with Nmap",
			Excerpt:  "Host discovery and port scanning basics.",
			Content:  "Nmap is the standard tool for mapping a network. Start with `nmap -sV target` to fingerprint services.",
			Category: "Reconnaissance",
			Tags:     []string{"nmap", "recon", "networking"},
			Status:   entity.StatusPublished,
		},
		{
			Slug:     "sql-injection-101",
			Title:    "SQL Injection 101",
			Excerpt:  "How unparameterized queries leak your database.",
			Content:  "Always use bound parameters. This post walks through union-based and blind injection against a lab target.",
			Category: "Web Security",
			Tags:     []string{"sqli", "owasp"},
			Status:   entity.StatusPublished,
		},
		{
			Slug:     "hardening-ssh",
			Title:    "Hardening SSH",
			Content:  "Disable password logins, restrict users and rotate host keys.",
			Category: "Defense",
			Tags:     []string{"ssh", "linux"},
			Status:   entity.StatusDraft,
		},
	}
}

func sampleTools() []*entity.GithubTool {
	return []*entity.GithubTool{
		{
			Slug:        "nmap",
			Name:        "Nmap",
			Description: "Network exploration tool and security scanner.",
			Category:    "Reconnaissance",
			Difficulty:  entity.DifficultyBeginner,
			Tags:        []string{"scanner", "network"},
			GithubURL:   "https://github.com/nmap/nmap",
			OfficialURL: "https://nmap.org",
			Stars:       9800,
		},
		{
			Slug:        "sqlmap",
			Name:        "sqlmap",
			Description: "Automatic SQL injection and database takeover tool.",
			Category:    "Web Security",
			Difficulty:  entity.DifficultyIntermediate,
			Tags:        []string{"sqli", "automation"},
			GithubURL:   "https://github.com/sqlmapproject/sqlmap",
			OfficialURL: "https://sqlmap.org",
			Stars:       31000,
		},
		{
			Slug:        "ghidra",
			Name:        "Ghidra",
			Description: "Software reverse engineering framework.",
			Category:    "Reverse Engineering",
			Difficulty:  entity.DifficultyAdvanced,
			Tags:        []string{"reversing", "disassembler"},
			GithubURL:   "https://github.com/NationalSecurityAgency/ghidra",
			OfficialURL: "https://ghidra-sre.org",
			Stars:       50000,
		},
	}
}
