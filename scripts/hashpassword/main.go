package main

import (
	"fmt"
	"os"

	"github.com/vitalcheck/vitalcheck-api/api"
)

// Quick utility to generate a bcrypt hash for a password
// Usage: go run ./scripts/hashpassword <email> <password>
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run ./scripts/hashpassword <email> <password>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]

	hashed, err := api.HashPassword(password)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bcrypt Hash: %s\n", hashed)
	fmt.Printf("\nTo update in MongoDB, run:\n")
	fmt.Printf("db.users.updateOne(\n")
	fmt.Printf("  {\"email\": %q},\n", email)
	fmt.Printf("  {$set: {\"password\": %q}}\n", hashed)
	fmt.Printf(")\n")
}
