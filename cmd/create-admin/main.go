package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/database"
	"github.com/atharvgarg18/iet-csbs-backend/internal/logger"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	authService := service.NewAuthService(cfg, userRepo, sessionRepo, log)
	userService := service.NewUserService(userRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Role
	fmt.Print("Enter Role (admin/editor/viewer, default admin): ")
	roleStr, _ := reader.ReadString('\n')
	roleStr = strings.TrimSpace(roleStr)
	role := model.RoleAdmin
	if roleStr != "" {
		role = model.Role(roleStr)
		if !role.Valid() {
			fmt.Println("Error: Role must be admin, editor, or viewer")
			return
		}
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	newUser := &model.User{
		Email:    email,
		Name:     name,
		Role:     role,
		IsActive: true,
	}

	if err := userService.Create(ctx, newUser, password); err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! User '%s' (%s, %s) created with ID: %d\n", newUser.Name, newUser.Email, newUser.Role, newUser.ID)
}
