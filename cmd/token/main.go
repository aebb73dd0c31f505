// Command token signs a bearer token for a principal. There is no login flow, so operators
// and local frontends use this to obtain credentials.
package main

import (
	"flag"
	"fmt"
	"log"

	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/config"
	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenant"

	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id inside the tenant store")
	email := flag.String("email", "", "principal email")
	role := flag.String("role", string(models.UserRoleMember), "member, hr, admin or superadmin")
	tenantID := flag.String("tenant", "", "home tenant id")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if !models.UserRole(*role).IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	svc, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}
	token, err := svc.GenerateToken(tenant.Principal{
		UserID:   *userID,
		Email:    *email,
		Role:     models.UserRole(*role),
		TenantID: *tenantID,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
