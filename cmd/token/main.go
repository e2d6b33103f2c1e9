// Command token mints a bearer token for calling the catalog's write routes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/config"
)

func main() {
	var (
		subject = flag.String("sub", "operator", "Token subject")
		role    = flag.String("role", auth.RoleAdmin, "Role claim: ADMIN or READER")
		ttl     = flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	)
	flag.Parse()

	config.LoadEnvFiles()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}
	if *role != auth.RoleAdmin && *role != auth.RoleReader {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	token, jti, err := auth.GenerateToken(secret, *subject, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot mint token: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "jti=%s expires=%s\n", jti, time.Now().Add(*ttl).Format(time.RFC3339))
	fmt.Println(token)
}
