// scripts/gcal-auth/main.go
//
// Run this once on a machine with a browser to authorize Google Tasks and
// Google Calendar access for the reminder stores, and save the user token.
//
// Usage:
//   go run ./scripts/gcal-auth --credentials google-credentials.json --token token.json
//
// Open the printed URL, sign in, paste the authorization code back here.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/oauth2"

	"reminder-extractor/pkg/googleauth"
)

func main() {
	credsPath := pflag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := pflag.String("token", googleauth.DefaultTokenPath, "where to save the token")
	pflag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := googleauth.InstalledConfig(data, googleauth.Scopes...)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in to your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := googleauth.SaveToken(*tokenPath, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("Set reminders.backend to gtasks or gcalendar and google.token_path to this file.")
}
