package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/dicepass/dicepass/internal/handlers/cli"
	wordlistRepo "github.com/dicepass/dicepass/internal/repositories/wordlist"
	"github.com/dicepass/dicepass/internal/services/password"
)

var (
	wordlistPath  string
	wordCount     int
	passwordCount int
	showRolls     bool
	outPath       string
)

func main() {
	// A .env file is optional; real environment variables win
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "dicepass",
		Short:        "Generates diceware passwords",
		Long:         "Generates memorable passwords by mapping cryptographically secure dice rolls onto a diceware word list.",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&wordlistPath, "wordlist", "l", getEnv("DICEPASS_WORDLIST", "wordlist.txt"), "path to a diceware word-list file")
	rootCmd.Flags().IntVarP(&wordCount, "words", "w", cast.ToInt(getEnv("DICEPASS_WORDS", "5")), "number of words in each password")
	rootCmd.Flags().IntVarP(&passwordCount, "passwords", "n", cast.ToInt(getEnv("DICEPASS_PASSWORDS", "1")), "number of passwords to generate")
	rootCmd.Flags().BoolVarP(&showRolls, "show-rolls", "r", false, "display the dice rolls alongside each password")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the password list to a file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("dicepass failed")
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	repo, err := wordlistRepo.NewFile(&wordlistRepo.Config{})
	if err != nil {
		return err
	}

	listOutput, err := repo.GetWordList(ctx, &wordlistRepo.GetWordListInput{
		Path: wordlistPath,
	})
	if err != nil {
		return err
	}

	// Refuse to generate against a list with gaps: an unmapped
	// roll-key would silently weaken password entropy.
	if err := listOutput.WordList.Verify(); err != nil {
		return err
	}

	passwordService, err := password.New(&password.Config{
		WordList: listOutput.WordList,
	})
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	handler, err := cli.New(&cli.Config{
		PasswordService: passwordService,
		Out:             out,
		ShowRolls:       showRolls,
	})
	if err != nil {
		return err
	}

	return handler.Run(ctx, &cli.RunInput{
		Passwords: passwordCount,
		Words:     wordCount,
	})
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
