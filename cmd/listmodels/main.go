// Command listmodels prints the Gemini models available to the configured
// API key that support content generation.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := aiquiz.NewGeminiClient(ctx, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Listing models that support generateContent...")
	models, err := aiquiz.ListContentModels(ctx, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing models: %v\n", err)
		fmt.Fprintln(os.Stderr, "Check that the API key is correct and has the necessary permissions.")
		os.Exit(1)
	}
	for _, m := range models {
		fmt.Printf("Model: %s, Display Name: %s\n", m.Name, m.DisplayName)
	}
	fmt.Println("\n--- List complete ---")
}
