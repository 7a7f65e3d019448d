package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssantos/wordkids/internal/auth"
	"github.com/ssantos/wordkids/internal/repo"
	"github.com/ssantos/wordkids/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load vocabulary into the database",
	Long: `Load vocabulary into the database.

Without flags, the built-in starter words are inserted for every empty
category. Use --file to import a JSON or XLSX vocabulary file instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		seeder := seed.New(st)

		file, _ := cmd.Flags().GetString("file")
		sheet, _ := cmd.Flags().GetString("sheet")

		var res *seed.Result
		if file != "" {
			res, err = seeder.File(ctx, file, sheet)
		} else {
			res, err = seeder.Defaults(ctx)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d items, skipped %d\n", res.Imported, res.Skipped)
		for _, p := range res.Problems {
			fmt.Println("  !", p)
		}

		email, _ := cmd.Flags().GetString("user")
		if email != "" {
			if err := provisionUser(cmd, st, email); err != nil {
				return err
			}
		}
		return nil
	},
}

// provisionUser creates a sign-in account alongside the vocabulary.
func provisionUser(cmd *cobra.Command, st *repo.Store, email string) error {
	name, _ := cmd.Flags().GetString("name")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		return fmt.Errorf("--password is required with --user")
	}
	if name == "" {
		name = email
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user, err := st.CreateUser(cmd.Context(), email, name, hash)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Printf("Created user %s (%s)\n", user.DisplayName, user.Email)
	return nil
}

func init() {
	seedCmd.Flags().String("file", "", "Vocabulary file to import (.json or .xlsx)")
	seedCmd.Flags().String("sheet", "", "Worksheet name for XLSX imports (default: first sheet)")
	seedCmd.Flags().String("user", "", "Also create a sign-in account with this email")
	seedCmd.Flags().String("name", "", "Display name for the new account")
	seedCmd.Flags().String("password", "", "Password for the new account")
}
