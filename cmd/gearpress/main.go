// Command gearpress runs the blog engine: public listing plus admin
// dashboard, configured entirely from environment variables (optionally via
// a .env file).
package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gearpress/gearpress"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := gearpress.SiteConfig{
		Name:        gearpress.EnvOr("SITE_NAME", "Blog"),
		URL:         strings.TrimSuffix(gearpress.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description: gearpress.EnvOr("SITE_DESCRIPTION", ""),
		Author:      gearpress.EnvOr("SITE_AUTHOR", ""),

		Addr:         gearpress.EnvOr("ADDR", ":3000"),
		DatabasePath: gearpress.EnvOr("DATABASE_PATH", "data/blog.db"),

		AdminEmail:    gearpress.MustEnv("ADMIN_EMAIL"),
		AdminPassword: gearpress.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: gearpress.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(gearpress.EnvOr("COOKIE_SECURE", ""), "true"),
	}

	app := gearpress.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
