package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear a learner's activity history",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		user, err := st.GetUserByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("lookup user: %w", err)
		}
		if err := st.ClearActivityLogs(ctx, user.ID); err != nil {
			return fmt.Errorf("clear activity: %w", err)
		}
		fmt.Printf("Cleared activity for %s\n", user.Email)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("email", "", "Learner account to reset")
}
